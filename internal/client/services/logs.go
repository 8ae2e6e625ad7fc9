package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joanaapp/joana-cli/internal/client/api"
	"github.com/joanaapp/joana-cli/internal/client/models"
)

// LogsService wraps the activity history endpoint. The log is read-only from
// the client's perspective.
type LogsService interface {
	List(ctx context.Context) ([]models.LogItem, error)
}

type logsService struct {
	api api.Requester
}

func NewLogsService(requester api.Requester) LogsService {
	return &logsService{api: requester}
}

type logsResponse struct {
	Logs []models.LogItem `json:"logs"`
}

func (l *logsService) List(ctx context.Context) ([]models.LogItem, error) {
	var resp logsResponse
	if err := l.api.GetJSON(ctx, "/logs", &resp); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return resp.Logs, nil
}

// DayGroup is one calendar day of activity.
type DayGroup struct {
	Day   time.Time
	Items []models.LogItem
}

// GroupByDay buckets items by the calendar day of CreatedAt (local time),
// newest day first. Within a day, items keep their incoming order.
func GroupByDay(items []models.LogItem) []DayGroup {
	byDay := make(map[time.Time]int)
	groups := make([]DayGroup, 0)

	for _, item := range items {
		t := item.CreatedAt.Local()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

		idx, ok := byDay[day]
		if !ok {
			idx = len(groups)
			byDay[day] = idx
			groups = append(groups, DayGroup{Day: day})
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}

	// sort newest first; insertion order is whatever the server sent
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j].Day.After(groups[j-1].Day); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	return groups
}

// ActionText maps a log action to its display string, case-insensitively.
// Unknown actions are shown as-is.
func ActionText(action string) string {
	switch strings.ToLower(action) {
	case models.ActionUpload:
		return "File uploaded"
	case models.ActionDelete:
		return "File deleted"
	case models.ActionLogin:
		return "Signed in"
	case models.ActionLogout:
		return "Signed out"
	default:
		return action
	}
}
