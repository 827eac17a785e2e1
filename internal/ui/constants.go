package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSparkle  = "✨"
	IconPicture  = "🖼"
	IconDownload = "⬇"
	IconRefresh  = "⟳"
	IconError    = "❌"
	IconClose    = "×"
)

// Phone mockup sizing. The frame keeps the 9:19.5 ratio of a modern phone;
// the screen inside it shows the 9:16 wallpaper.
const (
	MockupWidth  float32 = 220
	MockupHeight float32 = MockupWidth * 19.5 / 9

	MockupBezel        float32 = 8
	MockupCornerRadius float32 = 28
	MockupScreenRadius float32 = 20

	// iPhone notch
	NotchWidth  float32 = 80
	NotchHeight float32 = 18

	// Samsung punch-hole camera
	PunchHoleSize float32 = 12
	PunchHoleTop  float32 = 10

	// Home indicator bar
	HomeBarWidth  float32 = 70
	HomeBarHeight float32 = 4
	HomeBarBottom float32 = 8
)

// Gallery card sizing (9:16 thumbnails)
const (
	CardThumbWidth  float32 = 90
	CardThumbHeight float32 = CardThumbWidth * 16 / 9

	CardMinWidth  float32 = 260
	CardMinHeight float32 = CardThumbHeight + 12
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Form sizing
const (
	PromptEntryMinRows         = 3
	FormMinWidth       float32 = 320
)
