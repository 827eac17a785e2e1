package api

import (
	"context"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// Backend defines the interface for the wallpaper backend client.
type Backend interface {
	// Generate requests one new wallpaper. A response with success=false is
	// returned as an error.
	Generate(ctx context.Context, req model.GenerationRequest) (*model.Wallpaper, error)

	// List returns all wallpapers in the order the backend provides them.
	// An absent response body yields an empty slice, never nil.
	List(ctx context.Context) ([]*model.Wallpaper, error)

	// Get fetches a single wallpaper by id.
	Get(ctx context.Context, id string) (*model.Wallpaper, error)
}
