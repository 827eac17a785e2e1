package gallery

import (
	"context"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// Controller defines the interface for the wallpaper view-state service.
type Controller interface {
	SetUpdateCallback(func())

	// Generate issues one generation request. An empty or whitespace-only
	// prompt is a silent no-op: no request is sent and no error returned.
	Generate(ctx context.Context, prompt string, style model.Style) (*model.Wallpaper, error)

	// LoadWallpapers replaces the gallery with the backend's current list.
	LoadWallpapers(ctx context.Context) error

	// RefreshCurrent re-fetches the current wallpaper by id.
	RefreshCurrent(ctx context.Context) error

	// Select makes the given wallpaper current without any network call.
	Select(w *model.Wallpaper)

	Current() *model.Wallpaper
	Wallpapers() []*model.Wallpaper
	IsGenerating() bool
	IsLoading() bool
}
