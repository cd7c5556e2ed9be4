package cli

import (
	"context"

	"task-manager/internal/api"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// EditCommand handles the edit command. Nil fields are left unchanged.
type EditCommand struct {
	app         *App
	Name        *string
	Description *string
	Status      *string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute edits the task whose id is the first argument.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: tm edit <id> [--name] [--description] [--status]")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	changes := api.TaskChanges{Name: c.Name, Description: c.Description}
	if c.Status != nil {
		status, ok := domain.ParseStatus(*c.Status)
		if !ok {
			return c.app.errorHandler.Handle("edit task",
				errors.NewInvalidInputError("status", *c.Status, "expected Pendente, Em andamento or Concluída"))
		}
		changes.Status = &status
	}
	if changes.IsEmpty() {
		return c.app.errorHandler.Handle("edit task",
			errors.NewInvalidInputError("changes", nil, "nothing to change; pass --name, --description or --status"))
	}

	task, err := c.app.api.UpdateTask(ctx, id, changes)
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	c.app.printf("Updated task %d: %s (%s)\n", task.ID, task.Name, task.Status)
	return nil
}
