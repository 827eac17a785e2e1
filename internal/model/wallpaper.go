package model

import (
	"fmt"
	"strings"
	"time"
)

// Prompt display constants
const (
	// MaxPromptExcerptRunes limits the prompt excerpt shown on gallery cards
	// (roughly two lines of card width)
	MaxPromptExcerptRunes = 80

	// Ellipsis appended to clamped prompt excerpts
	Ellipsis = "…"
)

// DownloadFilenameFormat is the filename pattern for saved wallpapers
const DownloadFilenameFormat = "wallpaper-%s.jpg"

// CreatedAtDisplayFormat is the locale-ish date format shown on cards
const CreatedAtDisplayFormat = "Jan 2, 2006"

// Wallpaper represents a single generated wallpaper returned by the backend.
// Instances are immutable once received: the gallery collection and the
// current-preview slot each hold their own copy.
type Wallpaper struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`      // text the image was generated from
	ImageURL    string    `json:"image_url"`   // rendered image resource (URL or data URI)
	PreviewURL  string    `json:"preview_url"` // optional smaller preview, falls back to ImageURL
	AspectRatio string    `json:"aspect_ratio"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetDisplayURL returns the best image reference for previews: the preview
// URL when the backend provided one, otherwise the full image URL.
func (w *Wallpaper) GetDisplayURL() string {
	if w.PreviewURL != "" {
		return w.PreviewURL
	}
	return w.ImageURL
}

// GetPromptExcerpt returns the prompt clamped for gallery cards. Newlines
// are collapsed so card heights stay uniform.
func (w *Wallpaper) GetPromptExcerpt() string {
	prompt := strings.TrimSpace(w.Prompt)
	prompt = strings.ReplaceAll(prompt, "\n", " ")
	prompt = strings.ReplaceAll(prompt, "\r", " ")
	prompt = strings.ReplaceAll(prompt, "\t", " ")

	runes := []rune(prompt)
	if len(runes) <= MaxPromptExcerptRunes {
		return prompt
	}
	return strings.TrimSpace(string(runes[:MaxPromptExcerptRunes])) + Ellipsis
}

// GetCreatedAtString returns the creation date formatted for display, or a
// dash placeholder when the backend did not supply a timestamp.
func (w *Wallpaper) GetCreatedAtString() string {
	if w.CreatedAt.IsZero() {
		return "—"
	}
	return w.CreatedAt.Local().Format(CreatedAtDisplayFormat)
}

// GetDownloadFilename returns the filename used when saving this wallpaper
// to disk (wallpaper-<id>.jpg).
func (w *Wallpaper) GetDownloadFilename() string {
	return fmt.Sprintf(DownloadFilenameFormat, w.ID)
}
