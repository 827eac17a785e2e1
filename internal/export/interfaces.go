package export

import (
	"context"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// Exporter defines the interface for the wallpaper export service.
type Exporter interface {
	// SaveWallpaper fetches the wallpaper image and writes it into the save
	// directory as wallpaper-<id>.jpg, returning the written path.
	SaveWallpaper(ctx context.Context, w *model.Wallpaper) (string, error)

	// FetchImage resolves an image reference (http(s) URL or base64 data
	// URI) into raw bytes.
	FetchImage(ctx context.Context, ref string) ([]byte, error)

	// SetSaveDirectory changes where saved wallpapers are written.
	SetSaveDirectory(dir string)
}
