package services

import (
	"context"
	"testing"
	"time"

	"github.com/joanaapp/joana-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestLogsService_List(t *testing.T) {
	f := &fakeRequester{GetBody: `{"logs":[
		{"_id":"l1","userId":"u1","action":"login","createdAt":"2026-08-01T10:00:00Z","updatedAt":"2026-08-01T10:00:00Z"},
		{"_id":"l2","userId":"u1","action":"upload","details":"cat.png","createdAt":"2026-08-02T09:00:00Z","updatedAt":"2026-08-02T09:00:00Z"}
	]}`}
	svc := NewLogsService(f)

	logs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/logs", f.LastPath)
	require.Len(t, logs, 2)
	require.Equal(t, "upload", logs[1].Action)
	require.NotNil(t, logs[1].Details)
	require.Equal(t, "cat.png", *logs[1].Details)
}

// logAt builds an item in the local zone so day boundaries are deterministic.
func logAt(id string, day int, hour int) models.LogItem {
	return models.LogItem{ID: id, CreatedAt: time.Date(2026, time.August, day, hour, 0, 0, 0, time.Local)}
}

func TestGroupByDay(t *testing.T) {
	items := []models.LogItem{
		logAt("l1", 2, 9),
		logAt("l2", 1, 23),
		logAt("l3", 2, 15),
		{ID: "l4", CreatedAt: time.Date(2026, time.July, 30, 8, 0, 0, 0, time.Local)},
	}

	groups := GroupByDay(items)
	require.Len(t, groups, 3)

	// newest day first
	require.True(t, groups[0].Day.After(groups[1].Day))
	require.True(t, groups[1].Day.After(groups[2].Day))

	// items of the same day keep their incoming order
	require.Equal(t, "l1", groups[0].Items[0].ID)
	require.Equal(t, "l3", groups[0].Items[1].ID)
}

func TestGroupByDay_Empty(t *testing.T) {
	require.Empty(t, GroupByDay(nil))
}

func TestActionText(t *testing.T) {
	require.Equal(t, "File uploaded", ActionText("upload"))
	require.Equal(t, "File deleted", ActionText("DELETE"))
	require.Equal(t, "Signed in", ActionText("login"))
	require.Equal(t, "Signed out", ActionText("logout"))
	require.Equal(t, "password-change", ActionText("password-change"))
}
