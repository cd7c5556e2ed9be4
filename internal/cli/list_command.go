package cli

import (
	"context"

	"github.com/dustin/go-humanize/english"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
	// Status is the raw filter value; empty lists every task.
	Status string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints the tasks passing the status filter, in insertion order.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter, ok := domain.ParseFilter(c.Status)
	if !ok {
		return c.app.errorHandler.Handle("list tasks",
			errors.NewInvalidInputError("status", c.Status, "expected todos, Pendente, Em andamento or Concluída"))
	}

	tasks := c.app.api.ListTasks(filter)
	if len(tasks) == 0 {
		c.app.printf("No tasks found.\n")
		return nil
	}

	printTasks(c.app, tasks)
	c.app.printf("%s\n", english.Plural(len(tasks), "task", ""))
	return nil
}

// printTasks writes one line per task:
// id  status  createdDate  name: description
func printTasks(app *App, tasks []domain.Task) {
	width := app.config.Display.StatusWidth
	for _, task := range tasks {
		app.printf("%d  %-*s  %s  %s: %s\n", task.ID, width, task.Status, task.CreatedDate, task.Name, task.Description)
	}
}
