package ui

import (
	"context"
	"image/color"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wallstudio/wallpaper-studio/internal/config"
	"github.com/wallstudio/wallpaper-studio/internal/export"
	"github.com/wallstudio/wallpaper-studio/internal/gallery"
	"github.com/wallstudio/wallpaper-studio/internal/model"
	"github.com/wallstudio/wallpaper-studio/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	// Form components
	promptEntry *widget.Entry
	styleSelect *widget.Select
	phoneSelect *widget.Select
	generateBtn *widget.Button

	// Preview components
	mockup      *PhoneMockup
	downloadBtn *widget.Button

	// Gallery components
	galleryList  *widget.List
	galleryLabel *widget.Label

	// Snapshot of the gallery rendered by the list. Replaced wholesale on
	// every controller update, never mutated in place.
	wallpapers []*model.Wallpaper

	galleryCtl gallery.Controller
	exportSvc  export.Exporter

	settings     *config.Settings
	localization *Localization

	// Image resource cache keyed by reference (URL or data URI)
	imageCacheMutex sync.Mutex
	imageCache      map[string]fyne.Resource

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, galleryCtl gallery.Controller, exportSvc export.Exporter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the save directory exists
	platform.CreateDirectoryIfNotExists(settings.GetSaveDirectory())

	ui := &RootUI{
		window:       window,
		galleryCtl:   galleryCtl,
		exportSvc:    exportSvc,
		settings:     settings,
		localization: localization,
		imageCache:   make(map[string]fyne.Resource),
	}

	log.Printf("RootUI initialized with gallery controller: %v", ui.galleryCtl != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for gallery state updates
	ui.galleryCtl.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()

	// Initial gallery load happens off the UI thread; the update callback
	// repaints once the list arrives
	go func() {
		if err := ui.galleryCtl.LoadWallpapers(context.Background()); err != nil {
			log.Printf("Initial gallery load failed: %v", err)
		}
	}()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create prompt entry
	ui.promptEntry = widget.NewMultiLineEntry()
	ui.promptEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPrompt))
	ui.promptEntry.SetMinRowsVisible(PromptEntryMinRows)
	ui.promptEntry.Wrapping = fyne.TextWrapWord

	// Create style selector, first entry meaning no style at all
	styleOptions := []string{ui.localization.GetText(KeyNoStyle)}
	for _, s := range model.AllStyles() {
		styleOptions = append(styleOptions, s.String())
	}
	ui.styleSelect = widget.NewSelect(styleOptions, nil)
	ui.styleSelect.SetSelectedIndex(0)

	// Create phone model selector
	phoneOptions := []string{}
	for _, pm := range model.AllPhoneModels() {
		phoneOptions = append(phoneOptions, pm.String())
	}
	ui.phoneSelect = widget.NewSelect(phoneOptions, ui.onPhoneModelChange)
	ui.phoneSelect.SetSelected(ui.settings.GetPhoneModel().String())

	// Create generate button
	ui.generateBtn = widget.NewButton(IconSparkle+" "+ui.localization.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	} else {
		// Fallback to text if logo loading fails
		logoImage = nil
	}

	// Create notification panel under the form (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewVBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Create preview panel
	ui.mockup = NewPhoneMockup(ui.settings.GetPhoneModel())
	ui.downloadBtn = widget.NewButton(IconDownload+" "+ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Disable()

	// Create gallery list
	ui.galleryLabel = widget.NewLabel(ui.localization.GetText(KeyGalleryLoading))
	ui.galleryLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.galleryList = widget.NewList(
		func() int {
			return len(ui.wallpapers)
		},
		func() fyne.CanvasObject { return ui.createGalleryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateGalleryItem(id, obj) },
	)

	// Form column
	var formHeader fyne.CanvasObject
	if logoImage != nil {
		formHeader = container.NewHBox(logoImage, settingsBtn)
	} else {
		formHeader = container.NewHBox(settingsBtn)
	}
	// Transparent rectangle keeps the form column at a stable width
	formSpacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	formSpacer.SetMinSize(fyne.NewSize(FormMinWidth, 1))
	formColumn := container.NewStack(formSpacer, container.NewVBox(
		formHeader,
		ui.promptEntry,
		widget.NewForm(
			widget.NewFormItem(ui.localization.GetText(KeyStyle), ui.styleSelect),
			widget.NewFormItem(ui.localization.GetText(KeyPhoneModel), ui.phoneSelect),
		),
		ui.generateBtn,
		ui.notificationContainer,
	))

	// Preview column
	previewColumn := container.NewVBox(
		container.NewCenter(ui.mockup),
		ui.downloadBtn,
	)

	// Gallery column with header and status label
	galleryHeader := widget.NewLabel(ui.localization.GetText(KeyGalleryTitle))
	galleryHeader.TextStyle = fyne.TextStyle{Bold: true}
	galleryColumn := container.NewBorder(
		container.NewVBox(galleryHeader, ui.galleryLabel), // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		ui.galleryList, // center
	)

	content := container.NewBorder(
		nil,           // top
		nil,           // bottom
		formColumn,    // left
		previewColumn, // right
		galleryColumn, // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// File menu items
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	refreshItem := fyne.NewMenuItem(IconRefresh+" "+ui.localization.GetText(KeyRefreshPreview), ui.onRefreshPreview)
	reloadItem := fyne.NewMenuItem(IconRefresh+" "+ui.localization.GetText(KeyReloadGallery), ui.onReloadGallery)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, refreshItem, reloadItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.promptEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPrompt))
	if ui.galleryCtl.IsGenerating() {
		ui.generateBtn.SetText(ui.localization.GetText(KeyGenerating))
	} else {
		ui.generateBtn.SetText(IconSparkle + " " + ui.localization.GetText(KeyGenerate))
	}
	ui.downloadBtn.SetText(IconDownload + " " + ui.localization.GetText(KeyDownload))

	// Refresh gallery to update status texts
	ui.updateGalleryLabel()
	ui.galleryList.Refresh()
}

// selectedStyle maps the style dropdown back to its enum value
func (ui *RootUI) selectedStyle() model.Style {
	selected := ui.styleSelect.Selected
	if selected == ui.localization.GetText(KeyNoStyle) {
		return model.StyleNone
	}
	return model.StyleFromLabel(selected)
}

// onPhoneModelChange handles the phone model dropdown
func (ui *RootUI) onPhoneModelChange(label string) {
	pm := model.PhoneModelFromLabel(label)
	log.Printf("Phone model changed to %s", pm)

	ui.settings.SetPhoneModel(pm)
	if ui.mockup != nil {
		ui.mockup.SetPhoneModel(pm)
	}
}

// onGenerateClick handles the generate button click
func (ui *RootUI) onGenerateClick() {
	promptText := strings.TrimSpace(ui.promptEntry.Text)
	if promptText == "" {
		// Empty prompt never reaches the backend; a hint in the panel is the
		// only feedback
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterPrompt), false)
		return
	}

	style := ui.selectedStyle()
	log.Printf("Generating wallpaper: prompt=%q style=%q", promptText, style)

	ui.generateBtn.Disable()
	ui.generateBtn.SetText(ui.localization.GetText(KeyGenerating))
	ui.showNotification(ui.localization.GetText(KeyGenerating), true)

	go func() {
		wallpaper, err := ui.galleryCtl.Generate(context.Background(), promptText, style)

		fyne.Do(func() {
			ui.generateBtn.Enable()
			ui.generateBtn.SetText(IconSparkle + " " + ui.localization.GetText(KeyGenerate))

			if err != nil {
				log.Printf("Generation failed: %v", err)
				ui.showNotification(IconError+" "+ui.localization.GetText(KeyGenerationFailed)+": "+err.Error(), false)
				return
			}

			log.Printf("Generation succeeded: id=%s", wallpaper.ID)
			ui.hideNotification()
			ui.showToastNotification(ui.localization.GetText(KeyWallpaperReady), wallpaper.GetPromptExcerpt(), "")
		})
	}()
}

// onStateUpdate handles state updates from the gallery controller. It may be
// called from any goroutine.
func (ui *RootUI) onStateUpdate() {
	fyne.Do(func() {
		ui.wallpapers = ui.galleryCtl.Wallpapers()
		log.Printf("Gallery state update: %d wallpapers, generating=%v loading=%v",
			len(ui.wallpapers), ui.galleryCtl.IsGenerating(), ui.galleryCtl.IsLoading())

		ui.updateGalleryLabel()
		ui.galleryList.Refresh()
		ui.updatePreview()
	})
}

// updateGalleryLabel reflects loading and empty states above the list
func (ui *RootUI) updateGalleryLabel() {
	switch {
	case ui.galleryCtl.IsLoading():
		ui.galleryLabel.SetText(ui.localization.GetText(KeyGalleryLoading))
		ui.galleryLabel.Show()
	case len(ui.wallpapers) == 0:
		ui.galleryLabel.SetText(ui.localization.GetText(KeyGalleryEmpty))
		ui.galleryLabel.Show()
	default:
		ui.galleryLabel.Hide()
	}
}

// updatePreview syncs the mockup and download button with the current wallpaper
func (ui *RootUI) updatePreview() {
	current := ui.galleryCtl.Current()
	if current == nil {
		ui.mockup.SetImage(nil)
		ui.downloadBtn.Disable()
		return
	}

	ui.downloadBtn.Enable()

	ref := current.GetDisplayURL()
	if ref == "" {
		log.Printf("Wallpaper %s has no image reference", current.ID)
		ui.mockup.SetImage(nil)
		return
	}

	currentID := current.ID
	go func() {
		res, err := ui.loadImageResource(ref)
		if err != nil {
			log.Printf("Failed to load preview image for %s: %v", currentID, err)
			return
		}
		fyne.Do(func() {
			// The selection may have moved on while the image was in flight
			latest := ui.galleryCtl.Current()
			if latest == nil || latest.ID != currentID {
				log.Printf("Discarding stale preview image for %s", currentID)
				return
			}
			ui.mockup.SetImage(res)
		})
	}()
}

// loadImageResource fetches an image reference into a fyne resource with
// caching. Safe to call from any goroutine.
func (ui *RootUI) loadImageResource(ref string) (fyne.Resource, error) {
	ui.imageCacheMutex.Lock()
	if res, ok := ui.imageCache[ref]; ok {
		ui.imageCacheMutex.Unlock()
		return res, nil
	}
	ui.imageCacheMutex.Unlock()

	data, err := ui.exportSvc.FetchImage(context.Background(), ref)
	if err != nil {
		return nil, err
	}

	res := fyne.NewStaticResource(ref, data)

	ui.imageCacheMutex.Lock()
	ui.imageCache[ref] = res
	ui.imageCacheMutex.Unlock()

	return res, nil
}

// createGalleryItem creates a new gallery card widget
func (ui *RootUI) createGalleryItem() fyne.CanvasObject {
	// Create placeholder card - will be updated in updateGalleryItem
	dummyWallpaper := &model.Wallpaper{
		ID:     "placeholder",
		Prompt: "Loading...",
	}

	card := NewWallpaperCard(dummyWallpaper, ui.localization)
	card.SetCallbacks(ui.onPreviewWallpaper)
	return card
}

// updateGalleryItem updates a gallery card with current data
func (ui *RootUI) updateGalleryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.wallpapers) {
		return
	}

	wallpaper := ui.wallpapers[id]
	if wallpaper == nil {
		return
	}

	card, ok := item.(*WallpaperCard)
	if !ok {
		return
	}

	// Re-set callbacks every time the list recycles the card
	card.SetCallbacks(ui.onPreviewWallpaper)
	card.UpdateWallpaper(wallpaper)

	current := ui.galleryCtl.Current()
	card.SetSelected(current != nil && current.ID == wallpaper.ID)

	// Fetch the thumbnail off the UI thread
	ref := wallpaper.GetDisplayURL()
	if ref == "" {
		return
	}
	wallpaperID := wallpaper.ID
	go func() {
		res, err := ui.loadImageResource(ref)
		if err != nil {
			log.Printf("Failed to load thumbnail for %s: %v", wallpaperID, err)
			return
		}
		fyne.Do(func() {
			// The list may have recycled this card for another wallpaper
			if card.WallpaperID() != wallpaperID {
				return
			}
			card.SetThumbnail(res)
		})
	}()
}

// onPreviewWallpaper handles a gallery card tap. Pure selection, no network.
func (ui *RootUI) onPreviewWallpaper(wallpaperID string) {
	log.Printf("onPreviewWallpaper called for wallpaper %s", wallpaperID)

	for _, w := range ui.wallpapers {
		if w.ID == wallpaperID {
			ui.galleryCtl.Select(w)
			return
		}
	}

	log.Printf("Wallpaper %s not found in gallery snapshot", wallpaperID)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	current := ui.galleryCtl.Current()
	if current == nil {
		log.Printf("Download requested with no current wallpaper")
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoWallpaper)), ui.window.Canvas())
		return
	}

	log.Printf("Downloading wallpaper %s as %s", current.ID, current.GetDownloadFilename())
	ui.downloadBtn.Disable()

	go func() {
		savedPath, err := ui.exportSvc.SaveWallpaper(context.Background(), current)

		fyne.Do(func() {
			ui.downloadBtn.Enable()

			if err != nil {
				log.Printf("Failed to save wallpaper %s: %v", current.ID, err)
				ui.showNotification(IconError+" "+ui.localization.GetText(KeySaveFailed)+": "+err.Error(), false)
				return
			}

			log.Printf("Wallpaper saved: %s", savedPath)
			ui.sendSaveNotification(current, savedPath)
		})
	}()
}

// onRefreshPreview re-fetches the current wallpaper from the backend
func (ui *RootUI) onRefreshPreview() {
	if ui.galleryCtl.Current() == nil {
		log.Printf("Refresh preview requested with no current wallpaper")
		return
	}

	go func() {
		if err := ui.galleryCtl.RefreshCurrent(context.Background()); err != nil {
			log.Printf("Refresh preview failed: %v", err)
		}
	}()
}

// onReloadGallery reloads the gallery list from the backend
func (ui *RootUI) onReloadGallery() {
	go func() {
		if err := ui.galleryCtl.LoadWallpapers(context.Background()); err != nil {
			log.Printf("Gallery reload failed: %v", err)
			ui.showNotification(err.Error(), false)
		}
	}()
}

// showNotification displays a message in the notification panel under the form.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Apply the new save directory right away; a new API base URL is
		// picked up on next app start
		ui.exportSvc.SetSaveDirectory(ui.settings.GetSaveDirectory())
		ui.phoneSelect.SetSelected(ui.settings.GetPhoneModel().String())
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// sendSaveNotification sends a system notification for a saved wallpaper
func (ui *RootUI) sendSaveNotification(wallpaper *model.Wallpaper, savedPath string) {
	title := ui.localization.GetText(KeyWallpaperSaved)
	message := wallpaper.GetPromptExcerpt()

	// Use Fyne's SendNotification
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})

	// Show in-app toast notification with action buttons
	ui.showToastNotification(title, message, savedPath)
}

// showToastNotification shows an in-app toast notification. When savedPath is
// set, reveal and open action buttons are included.
func (ui *RootUI) showToastNotification(title, message, savedPath string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	actions := container.NewHBox()
	if savedPath != "" {
		revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
			if err := platform.OpenFileInManager(savedPath); err != nil {
				log.Printf("Error revealing file %s: %v", savedPath, err)
			}
		})
		revealBtn.Importance = widget.HighImportance

		openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
			if err := platform.OpenFileWithDefaultApp(savedPath); err != nil {
				log.Printf("Error opening file %s: %v", savedPath, err)
			}
		})
		openBtn.Importance = widget.MediumImportance

		actions.Add(revealBtn)
		actions.Add(openBtn)
	}

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Layout the toast content
	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		actions,
	)

	// Create and position the popup
	toastPopup = widget.NewModalPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		if toastPopup != nil {
			toastPopup.Hide()
		}
	}()
}
