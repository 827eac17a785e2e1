package api

import (
	"time"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// wallpaperResponse mirrors the backend's response shape: a success flag with
// the wallpaper fields flattened at the top level, plus an error message when
// success is false.
type wallpaperResponse struct {
	Success     bool      `json:"success"`
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`
	ImageURL    string    `json:"image_url"`
	PreviewURL  string    `json:"preview_url"`
	AspectRatio string    `json:"aspect_ratio"`
	CreatedAt   time.Time `json:"created_at"`
	Error       string    `json:"error"`
}

// toWallpaper converts the wire representation into the domain entity.
func (r *wallpaperResponse) toWallpaper() *model.Wallpaper {
	return &model.Wallpaper{
		ID:          r.ID,
		Prompt:      r.Prompt,
		ImageURL:    r.ImageURL,
		PreviewURL:  r.PreviewURL,
		AspectRatio: r.AspectRatio,
		CreatedAt:   r.CreatedAt,
	}
}

// errorResponse is the envelope FastAPI-style backends use for HTTP errors.
type errorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// message returns whichever error field the backend filled in.
func (e *errorResponse) message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}
