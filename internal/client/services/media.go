package services

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/joanaapp/joana-cli/internal/client/api"
	"github.com/joanaapp/joana-cli/internal/client/models"
)

// DefaultStorageCapacity is the per-account quota used for usage display: 5 GiB.
const DefaultStorageCapacity int64 = 5 * 1024 * 1024 * 1024

// MediaService wraps the media gallery endpoints. Items are created whole
// (upload) and destroyed whole (delete); there are no partial edits.
type MediaService interface {
	List(ctx context.Context) ([]models.MediaItem, error)

	// Upload sends the file as multipart form data under the "file" field.
	Upload(ctx context.Context, r io.Reader, fileName string, mimeType string) error

	Delete(ctx context.Context, id string) error
}

type mediaService struct {
	api api.Requester
}

func NewMediaService(requester api.Requester) MediaService {
	return &mediaService{api: requester}
}

type mediaResponse struct {
	Items []models.MediaItem `json:"items"`
}

func (m *mediaService) List(ctx context.Context) ([]models.MediaItem, error) {
	var resp mediaResponse
	if err := m.api.GetJSON(ctx, "/media", &resp); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return resp.Items, nil
}

func (m *mediaService) Upload(ctx context.Context, r io.Reader, fileName string, mimeType string) error {
	if err := m.api.PostMultipart(ctx, "/media", "file", fileName, mimeType, r, nil); err != nil {
		return fmt.Errorf("upload media: %w", err)
	}
	return nil
}

func (m *mediaService) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, "/media/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

// TotalSize sums the byte sizes of all items. Pure, order-independent.
func TotalSize(items []models.MediaItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Size
	}
	return total
}

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders n using base-1024 units, picking the largest unit whose
// value is at least 1, with two decimal places. Zero renders as exactly "0 B".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}

// StoragePercentage reports used as a percentage of capacity, returning 0
// when capacity is 0.
func StoragePercentage(used int64, capacity int64) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(used) / float64(capacity) * 100
}
