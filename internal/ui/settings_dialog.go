package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wallstudio/wallpaper-studio/internal/config"
	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// Settings dialog size constants
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 400
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onChanged    func()

	// UI components
	apiBaseEntry   *widget.Entry
	saveDirEntry   *widget.Entry
	phoneSelect    *widget.Select
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. The onChanged
// callback fires after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onChanged func()) {
	sd := NewSettingsDialog(settings, window, localization, onChanged)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onChanged func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onChanged:    onChanged,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Backend base URL
	sd.apiBaseEntry = widget.NewEntry()
	sd.apiBaseEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	// Save directory selection
	sd.saveDirEntry = widget.NewEntry()
	sd.saveDirEntry.SetPlaceHolder("Save directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	// Phone model selection
	phoneOptions := []string{}
	for _, pm := range model.AllPhoneModels() {
		phoneOptions = append(phoneOptions, pm.String())
	}
	sd.phoneSelect = widget.NewSelect(phoneOptions, nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Backend Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyAPIBaseURL)+":"),
		sd.apiBaseEntry,

		widget.NewLabel(sd.localization.GetText(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyPhoneModel)+":"),
		sd.phoneSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiBaseEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.phoneSelect.SetSelected(sd.settings.GetPhoneModel().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save backend base URL
	if sd.apiBaseEntry.Text != "" {
		sd.settings.SetAPIBaseURL(sd.apiBaseEntry.Text)
	}

	// Save directory
	if sd.saveDirEntry.Text != "" {
		sd.settings.SetSaveDirectory(sd.saveDirEntry.Text)
	}

	// Save phone model
	if sd.phoneSelect.Selected != "" {
		sd.settings.SetPhoneModel(model.PhoneModelFromLabel(sd.phoneSelect.Selected))
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onChanged != nil {
		sd.onChanged()
	}
}
