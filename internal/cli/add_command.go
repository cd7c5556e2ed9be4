package cli

import (
	"context"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute creates a task from a name and a description argument.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	var name, description string
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 1 {
		description = args[1]
	}

	task, err := c.app.api.CreateTask(ctx, name, description)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task %d: %s (%s)\n", task.ID, task.Name, task.Status)
	return nil
}
