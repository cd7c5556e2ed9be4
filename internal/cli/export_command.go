package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/persistence"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app    *App
	mapper *persistence.TaskMapper
	Format string
	Status string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:    app,
		mapper: persistence.NewTaskMapper(),
		Format: FormatJSON,
	}
}

// Execute writes the tasks in the selected format. JSON output uses the
// snapshot format, so it can be fed back into a slot.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	filter, ok := domain.ParseFilter(c.Status)
	if !ok {
		return c.app.errorHandler.Handle("export tasks",
			errors.NewInvalidInputError("status", c.Status, "unknown status"))
	}
	records := c.mapper.ToRecordSlice(c.app.api.ListTasks(filter))

	switch c.Format {
	case FormatJSON:
		return c.outputJSON(records)
	case FormatYAML:
		return c.outputYAML(records)
	case FormatCSV:
		return c.outputCSV(records)
	default:
		return c.app.errorHandler.Handle("export tasks",
			errors.NewInvalidInputError("format", c.Format, "supported formats are json, yaml and csv"))
	}
}

func (c *ExportCommand) outputJSON(records []persistence.Record) error {
	value, err := persistence.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	c.app.printf("%s\n", value)
	return nil
}

func (c *ExportCommand) outputYAML(records []persistence.Record) error {
	encoder := yaml.NewEncoder(c.app.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return encoder.Close()
}

func (c *ExportCommand) outputCSV(records []persistence.Record) error {
	writer := csv.NewWriter(c.app.out)
	defer writer.Flush()

	header := []string{"ID", "Name", "Description", "Created", "Status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.Name,
			record.Description,
			record.CreatedDate,
			record.Status,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
