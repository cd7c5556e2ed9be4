package cli

import (
	"context"

	"task-manager/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute deletes the task whose id is the first argument. An unknown id
// is reported but is not an error.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: tm delete <id>")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	task, err := c.app.api.GetTask(id)
	if err != nil {
		c.app.printf("No task with id %d.\n", id)
		return nil
	}

	c.app.api.DeleteTask(ctx, id)
	c.app.printf("Deleted task %d: %s\n", id, task.Name)
	return nil
}
