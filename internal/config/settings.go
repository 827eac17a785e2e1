package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/wallstudio/wallpaper-studio/internal/model"
	"github.com/wallstudio/wallpaper-studio/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL = "api_base_url"
	KeySaveDir    = "save_directory"
	KeyPhoneModel = "phone_model"
	KeyLanguage   = "app_language"
)

// EnvAPIBase overrides the stored backend URL when set
const EnvAPIBase = "WALLPAPER_API_BASE"

// Default values
const (
	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultLanguage   = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the backend base URL. The environment variable takes
// precedence over the stored preference so deployments can point the app at
// another backend without touching preferences.
func (s *Settings) GetAPIBaseURL() string {
	if env := os.Getenv(EnvAPIBase); env != "" {
		return env
	}

	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the backend base URL
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetSaveDirectory returns the configured wallpaper save directory
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/wallpapers"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the wallpaper save directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetPhoneModel returns the configured preview phone model
func (s *Settings) GetPhoneModel() model.PhoneModel {
	stored := s.app.Preferences().String(KeyPhoneModel)
	if stored == "" {
		s.SetPhoneModel(model.DefaultPhoneModel)
		return model.DefaultPhoneModel
	}

	pm := model.PhoneModel(stored)
	for _, known := range model.AllPhoneModels() {
		if pm == known {
			return pm
		}
	}
	// Unknown stored value, reset to default
	s.SetPhoneModel(model.DefaultPhoneModel)
	return model.DefaultPhoneModel
}

// SetPhoneModel sets the preview phone model
func (s *Settings) SetPhoneModel(pm model.PhoneModel) {
	s.app.Preferences().SetString(KeyPhoneModel, string(pm))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
