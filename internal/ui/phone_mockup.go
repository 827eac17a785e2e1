package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"log"

	// Wallpapers arrive as JPEG or PNG bytes
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// Screen aspect ratio of the mocked-up devices
const MockupScreenRatio = 9.0 / 19.5

// Mockup colors
var (
	MockupBodyColor     = color.RGBA{R: 28, G: 28, B: 36, A: 255}
	MockupScreenColor   = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	MockupNotchColor    = color.RGBA{R: 8, G: 8, B: 10, A: 255}
	MockupHomeBarColor  = color.RGBA{R: 255, G: 255, B: 255, A: 140}
	PlaceholderTopColor = color.RGBA{R: 124, G: 77, B: 255, A: 255}
	PlaceholderEndColor = color.RGBA{R: 236, G: 64, B: 122, A: 255}
)

// PhoneMockup is a decorative phone frame with a wallpaper composited inside.
// It is a pure function of its two inputs: the image resource and the phone
// model. With no image set it shows a placeholder glyph on a gradient.
type PhoneMockup struct {
	widget.BaseWidget

	phoneModel model.PhoneModel
	image      fyne.Resource
	cropped    image.Image // image cropped to the screen ratio, nil when unset
}

// NewPhoneMockup creates a phone mockup for the given model with no image.
func NewPhoneMockup(phoneModel model.PhoneModel) *PhoneMockup {
	pm := &PhoneMockup{phoneModel: phoneModel}
	pm.ExtendBaseWidget(pm)
	return pm
}

// SetPhoneModel switches the rendered device frame.
func (pm *PhoneMockup) SetPhoneModel(phoneModel model.PhoneModel) {
	pm.phoneModel = phoneModel
	pm.Refresh()
}

// PhoneModel returns the currently rendered device frame.
func (pm *PhoneMockup) PhoneModel() model.PhoneModel {
	return pm.phoneModel
}

// SetImage sets the wallpaper shown on the mockup screen. The image is
// center-cropped to the screen ratio so it covers the screen without
// distortion. A nil resource switches back to the placeholder.
func (pm *PhoneMockup) SetImage(res fyne.Resource) {
	pm.image = res
	pm.cropped = nil
	if res != nil {
		cropped, err := cropToScreenRatio(res.Content())
		if err != nil {
			// Fall back to rendering the raw resource
			log.Printf("Failed to crop wallpaper image: %v", err)
		} else {
			pm.cropped = cropped
		}
	}
	pm.Refresh()
}

// HasImage reports whether a wallpaper is currently displayed.
func (pm *PhoneMockup) HasImage() bool {
	return pm.image != nil
}

// CreateRenderer implements fyne.Widget.
func (pm *PhoneMockup) CreateRenderer() fyne.WidgetRenderer {
	body := canvas.NewRectangle(MockupBodyColor)
	body.CornerRadius = MockupCornerRadius

	screen := canvas.NewRectangle(MockupScreenColor)
	screen.CornerRadius = MockupScreenRadius

	gradient := canvas.NewLinearGradient(PlaceholderTopColor, PlaceholderEndColor, 0)

	glyph := canvas.NewText(IconPicture, color.White)
	glyph.TextSize = 42
	glyph.Alignment = fyne.TextAlignCenter

	img := canvas.NewImageFromResource(nil)
	// The image is pre-cropped to the screen ratio, stretch fills exactly
	img.FillMode = canvas.ImageFillStretch
	img.Hide()

	notch := canvas.NewRectangle(MockupNotchColor)
	notch.CornerRadius = NotchHeight / 2

	hole := canvas.NewCircle(MockupNotchColor)

	homeBar := canvas.NewRectangle(MockupHomeBarColor)
	homeBar.CornerRadius = HomeBarHeight / 2

	return &phoneMockupRenderer{
		mockup:   pm,
		body:     body,
		screen:   screen,
		gradient: gradient,
		glyph:    glyph,
		image:    img,
		notch:    notch,
		hole:     hole,
		homeBar:  homeBar,
	}
}

// phoneMockupRenderer lays out the frame elements and keeps them in sync
// with the widget state.
type phoneMockupRenderer struct {
	mockup *PhoneMockup

	body     *canvas.Rectangle
	screen   *canvas.Rectangle
	gradient *canvas.LinearGradient
	glyph    *canvas.Text
	image    *canvas.Image
	notch    *canvas.Rectangle
	hole     *canvas.Circle
	homeBar  *canvas.Rectangle
}

func (r *phoneMockupRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MockupWidth, MockupHeight)
}

func (r *phoneMockupRenderer) Layout(size fyne.Size) {
	// Keep the frame at the fixed 9:19.5 ratio, centered in whatever space
	// the layout hands us
	frameW := size.Width
	frameH := frameW * 19.5 / 9
	if frameH > size.Height {
		frameH = size.Height
		frameW = frameH * 9 / 19.5
	}
	frameX := (size.Width - frameW) / 2
	frameY := (size.Height - frameH) / 2

	r.body.Move(fyne.NewPos(frameX, frameY))
	r.body.Resize(fyne.NewSize(frameW, frameH))

	screenX := frameX + MockupBezel
	screenY := frameY + MockupBezel
	screenW := frameW - 2*MockupBezel
	screenH := frameH - 2*MockupBezel

	screenPos := fyne.NewPos(screenX, screenY)
	screenSize := fyne.NewSize(screenW, screenH)

	r.screen.Move(screenPos)
	r.screen.Resize(screenSize)
	r.gradient.Move(screenPos)
	r.gradient.Resize(screenSize)
	r.image.Move(screenPos)
	r.image.Resize(screenSize)

	r.glyph.Move(fyne.NewPos(screenX, screenY+screenH/2-r.glyph.MinSize().Height/2))
	r.glyph.Resize(fyne.NewSize(screenW, r.glyph.MinSize().Height))

	r.notch.Move(fyne.NewPos(frameX+(frameW-NotchWidth)/2, screenY))
	r.notch.Resize(fyne.NewSize(NotchWidth, NotchHeight))

	r.hole.Move(fyne.NewPos(frameX+(frameW-PunchHoleSize)/2, screenY+PunchHoleTop))
	r.hole.Resize(fyne.NewSize(PunchHoleSize, PunchHoleSize))

	r.homeBar.Move(fyne.NewPos(frameX+(frameW-HomeBarWidth)/2, frameY+frameH-MockupBezel-HomeBarBottom-HomeBarHeight))
	r.homeBar.Resize(fyne.NewSize(HomeBarWidth, HomeBarHeight))
}

func (r *phoneMockupRenderer) Refresh() {
	if r.mockup.image != nil {
		if r.mockup.cropped != nil {
			r.image.Resource = nil
			r.image.Image = r.mockup.cropped
		} else {
			r.image.Image = nil
			r.image.Resource = r.mockup.image
		}
		r.image.Show()
		r.gradient.Hide()
		r.glyph.Hide()
	} else {
		r.image.Resource = nil
		r.image.Image = nil
		r.image.Hide()
		r.gradient.Show()
		r.glyph.Show()
	}

	switch r.mockup.phoneModel {
	case model.PhoneModelSamsung:
		r.notch.Hide()
		r.hole.Show()
	default:
		r.notch.Show()
		r.hole.Hide()
	}

	r.image.Refresh()
	canvas.Refresh(r.mockup)
}

func (r *phoneMockupRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.body, r.screen, r.gradient, r.image, r.glyph, r.notch, r.hole, r.homeBar}
}

func (r *phoneMockupRenderer) Destroy() {}

// cropToScreenRatio decodes image bytes and center-crops them to the mockup
// screen ratio, so the result covers the screen edge to edge.
func cropToScreenRatio(data []byte) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src, nil
	}

	cropW, cropH := w, h
	if float64(w)/float64(h) > MockupScreenRatio {
		// Too wide: trim the sides
		cropW = int(float64(h)*MockupScreenRatio + 0.5)
	} else {
		// Too tall: trim top and bottom
		cropH = int(float64(w)/MockupScreenRatio + 0.5)
	}

	x0 := b.Min.X + (w-cropW)/2
	y0 := b.Min.Y + (h-cropH)/2
	rect := image.Rect(x0, y0, x0+cropW, y0+cropH)

	if sub, ok := src.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect), nil
	}

	out := image.NewRGBA(image.Rect(0, 0, cropW, cropH))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, nil
}
