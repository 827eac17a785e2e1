package api

// Package api implements the HTTP client for the wallpaper backend service.
// It covers the three endpoints the backend exposes: generating a wallpaper,
// listing all wallpapers, and fetching a single wallpaper by id. Responses
// carry a success flag with the wallpaper fields flattened alongside it.
