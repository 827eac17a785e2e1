package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// WallpaperCard represents a compact gallery card widget
type WallpaperCard struct {
	widget.BaseWidget

	wallpaper    *model.Wallpaper
	localization *Localization

	// UI components
	thumbnail   *canvas.Image
	thumbHolder *fyne.Container
	promptLabel *widget.Label
	dateLabel   *widget.Label

	selected bool

	// Callbacks
	onPreview func(wallpaperID string)
}

// NewWallpaperCard creates a new gallery card widget
func NewWallpaperCard(wallpaper *model.Wallpaper, localization *Localization) *WallpaperCard {
	if wallpaper == nil {
		log.Printf("Warning: NewWallpaperCard called with nil wallpaper")
		// Create a dummy wallpaper to prevent crashes
		wallpaper = &model.Wallpaper{
			ID:     "dummy",
			Prompt: "Dummy Wallpaper",
		}
	}

	wc := &WallpaperCard{
		wallpaper:    wallpaper,
		localization: localization,
	}
	wc.ExtendBaseWidget(wc)
	wc.createUI()
	wc.updateFromWallpaper()
	return wc
}

// SetCallbacks sets the action callbacks
func (wc *WallpaperCard) SetCallbacks(onPreview func(wallpaperID string)) {
	if onPreview == nil {
		log.Printf("Warning: onPreview callback is nil for wallpaper %s", wc.wallpaper.ID)
	}
	wc.onPreview = onPreview
}

// UpdateWallpaper updates the card with new wallpaper data
func (wc *WallpaperCard) UpdateWallpaper(wallpaper *model.Wallpaper) {
	if wallpaper == nil {
		log.Printf("Warning: UpdateWallpaper called with nil wallpaper for existing card %s", wc.wallpaper.ID)
		return
	}

	wc.wallpaper = wallpaper
	wc.updateFromWallpaper()
	wc.Refresh()
}

// WallpaperID returns the id of the wallpaper the card displays.
func (wc *WallpaperCard) WallpaperID() string {
	return wc.wallpaper.ID
}

// SetSelected toggles the selected highlight state
func (wc *WallpaperCard) SetSelected(selected bool) {
	if wc.selected == selected {
		return
	}
	wc.selected = selected
	wc.Refresh()
}

// SetThumbnail sets the loaded thumbnail resource. Called once the async
// image fetch completes.
func (wc *WallpaperCard) SetThumbnail(res fyne.Resource) {
	if res == nil {
		return
	}
	wc.thumbnail.Resource = res
	wc.thumbnail.Show()
	wc.thumbnail.Refresh()
}

// Tapped implements fyne.Tappable. A tap previews the wallpaper and never
// issues any network request by itself.
func (wc *WallpaperCard) Tapped(_ *fyne.PointEvent) {
	currentWallpaper := wc.wallpaper
	log.Printf("Gallery card tapped for wallpaper %s", currentWallpaper.ID)
	if wc.onPreview != nil {
		wc.onPreview(currentWallpaper.ID)
	} else {
		log.Printf("onPreview callback is nil for wallpaper %s", currentWallpaper.ID)
	}
}

// createUI creates the UI components
func (wc *WallpaperCard) createUI() {
	wc.thumbnail = canvas.NewImageFromResource(nil)
	wc.thumbnail.FillMode = canvas.ImageFillContain
	wc.thumbnail.Hide()

	// Transparent rectangle fixes the thumbnail column width
	thumbSpacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	thumbSpacer.SetMinSize(fyne.NewSize(CardThumbWidth, CardThumbHeight))

	glyph := canvas.NewText(IconPicture, color.Gray{Y: 160})
	glyph.TextSize = 28
	glyph.Alignment = fyne.TextAlignCenter

	wc.thumbHolder = container.NewStack(thumbSpacer, container.NewCenter(glyph), wc.thumbnail)

	wc.promptLabel = widget.NewLabel("")
	wc.promptLabel.TextStyle = fyne.TextStyle{Bold: true}
	wc.promptLabel.Wrapping = fyne.TextWrapWord
	wc.promptLabel.Truncation = fyne.TextTruncateEllipsis
	wc.promptLabel.Alignment = fyne.TextAlignLeading

	wc.dateLabel = widget.NewLabel("")
	wc.dateLabel.Alignment = fyne.TextAlignLeading
	wc.dateLabel.TextStyle = fyne.TextStyle{Italic: true}
}

// updateFromWallpaper updates UI components based on wallpaper data
func (wc *WallpaperCard) updateFromWallpaper() {
	if wc.wallpaper == nil {
		log.Printf("Warning: updateFromWallpaper called with nil wallpaper")
		return
	}

	wc.promptLabel.SetText(wc.wallpaper.GetPromptExcerpt())
	wc.dateLabel.SetText(wc.wallpaper.GetCreatedAtString())

	if wc.selected {
		wc.promptLabel.Importance = widget.HighImportance
	} else {
		wc.promptLabel.Importance = widget.MediumImportance
	}
}

// CreateRenderer creates the widget renderer
func (wc *WallpaperCard) CreateRenderer() fyne.WidgetRenderer {
	return &wallpaperCardRenderer{card: wc}
}

// wallpaperCardRenderer renders the gallery card widget
type wallpaperCardRenderer struct {
	card   *WallpaperCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *wallpaperCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < CardMinWidth {
			size.Width = CardMinWidth
		}
		if size.Height < CardMinHeight {
			size.Height = CardMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *wallpaperCardRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}

// Refresh refreshes the renderer
func (r *wallpaperCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.card.updateFromWallpaper()
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *wallpaperCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *wallpaperCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *wallpaperCardRenderer) createLayout() {
	wc := r.card

	textColumn := container.NewVBox(
		wc.promptLabel,
		wc.dateLabel,
	)

	mainContent := container.NewBorder(nil, nil, wc.thumbHolder, nil, textColumn)

	separator := widget.NewSeparator()

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)
}
