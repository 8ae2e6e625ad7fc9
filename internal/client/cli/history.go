package cli

import (
	"context"

	"github.com/joanaapp/joana-cli/internal/client/services"
)

// History fetches the activity log and prints it grouped by day, newest
// day first.
func (a *App) History(ctx context.Context) error {
	items, err := a.logs.List(ctx)
	if err != nil {
		return opError("history", err)
	}

	if len(items) == 0 {
		a.printf("No activity yet.\n")
		return nil
	}

	for _, group := range services.GroupByDay(items) {
		a.printf("%s\n", group.Day.Format("02 January 2006"))
		for _, item := range group.Items {
			line := services.ActionText(item.Action)
			if item.Details != nil && *item.Details != "" {
				line += " - " + *item.Details
			}
			a.printf("  %s  %s\n", item.CreatedAt.Local().Format("15:04"), line)
		}
	}
	return nil
}
