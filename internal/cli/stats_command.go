package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"task-manager/internal/domain"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute prints the number of tasks in each status.
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	stats := c.app.api.Stats()
	width := c.app.config.Display.StatusWidth

	for _, status := range domain.Statuses() {
		count := stats.Count(status)
		c.app.printf("%-*s  %s  %s\n", width, status, humanize.Comma(int64(count)), percent(count, stats.Total))
	}
	c.app.printf("%s\n", english.Plural(stats.Total, "task", ""))
	return nil
}

func percent(count, total int) string {
	if total == 0 {
		return "(0%)"
	}
	return fmt.Sprintf("(%d%%)", (count*100+total/2)/total)
}
