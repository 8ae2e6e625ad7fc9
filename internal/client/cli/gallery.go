package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joanaapp/joana-cli/internal/client/services"
)

// ListMedia prints the gallery, newest first as the server returns it.
func (a *App) ListMedia(ctx context.Context) error {
	items, err := a.media.List(ctx)
	if err != nil {
		return opError("list", err)
	}

	if len(items) == 0 {
		a.printf("No media yet. Use 'upload' to add a file.\n")
		return nil
	}

	for _, item := range items {
		a.printf("%-24s  %-36s  %-12s  %10s  %s\n",
			item.ID, item.OriginalName, item.MimeType,
			services.FormatBytes(item.Size),
			item.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	a.printf("%d item(s), %s total\n", len(items), services.FormatBytes(services.TotalSize(items)))
	return nil
}

// UploadMedia prompts for a local file and uploads it to the gallery.
func (a *App) UploadMedia(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to file", a.out)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	name := filepath.Base(path)
	if err := a.media.Upload(ctx, file, name, mimeTypeOf(name)); err != nil {
		return opError("upload", err)
	}

	a.printf("Uploaded %s.\n", name)
	return nil
}

// DeleteMedia prompts for an item id and deletes it after confirmation.
func (a *App) DeleteMedia(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Media id to delete", a.out)
	if err != nil {
		return err
	}
	if id == "" {
		a.printf("Cancelled.\n")
		return nil
	}

	if !Confirm(a.reader, fmt.Sprintf("Delete %s? This cannot be undone.", id), a.out) {
		a.printf("Cancelled.\n")
		return nil
	}

	if err := a.media.Delete(ctx, id); err != nil {
		return opError("delete", err)
	}
	a.printf("Deleted %s.\n", id)
	return nil
}

// Usage prints the storage summary against the account quota.
func (a *App) Usage(ctx context.Context) error {
	items, err := a.media.List(ctx)
	if err != nil {
		return opError("usage", err)
	}

	used := services.TotalSize(items)
	a.printf("Used %s of %s (%.2f%%)\n",
		services.FormatBytes(used),
		services.FormatBytes(services.DefaultStorageCapacity),
		services.StoragePercentage(used, services.DefaultStorageCapacity))
	return nil
}
