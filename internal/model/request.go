package model

import "strings"

// Fixed generation parameters for phone wallpapers. The backend accepts
// arbitrary values but this client always requests the phone ratio.
const (
	WallpaperAspectRatio = "9:16"
	WallpaperMegapixels  = "1"
)

// GenerationRequest is the ephemeral parameter set for one generate call.
// It exists only for the duration of a single outbound request and is never
// persisted.
type GenerationRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style,omitempty"` // wire value of a Style, omitted when empty
	AspectRatio string `json:"aspect_ratio"`
	Megapixels  string `json:"megapixels"`
}

// NewGenerationRequest builds a request with the prompt trimmed and the fixed
// wallpaper parameters filled in. style may be StyleNone.
func NewGenerationRequest(prompt string, style Style) GenerationRequest {
	return GenerationRequest{
		Prompt:      strings.TrimSpace(prompt),
		Style:       style.WireValue(),
		AspectRatio: WallpaperAspectRatio,
		Megapixels:  WallpaperMegapixels,
	}
}

// IsValid reports whether the request carries a non-empty prompt. An invalid
// request must not be sent; callers treat it as a silent no-op.
func (r GenerationRequest) IsValid() bool {
	return strings.TrimSpace(r.Prompt) != ""
}
