package models

import "time"

// MediaItem is a stored media file. Items are immutable once created
// server-side: the client only uploads new items and deletes whole items.
type MediaItem struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Width        *int      `json:"width,omitempty"`
	Height       *int      `json:"height,omitempty"`
	Duration     *float64  `json:"duration,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
