package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetAPIBaseURL()
	if url != DefaultAPIBaseURL {
		t.Errorf("Expected default API base %s, got %s", DefaultAPIBaseURL, url)
	}

	// Test setting custom value
	custom := "https://wallpapers.example.com"
	settings.SetAPIBaseURL(custom)

	if got := settings.GetAPIBaseURL(); got != custom {
		t.Errorf("Expected API base %s, got %s", custom, got)
	}
}

func TestAPIBaseURL_EnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetAPIBaseURL("https://stored.example.com")
	t.Setenv(EnvAPIBase, "https://env.example.com")

	if got := settings.GetAPIBaseURL(); got != "https://env.example.com" {
		t.Errorf("Expected env override to win, got %s", got)
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSaveDirectory()
	if dir == "" {
		t.Error("Save directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/wallpapers"
	settings.SetSaveDirectory(customDir)

	if got := settings.GetSaveDirectory(); got != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, got)
	}
}

func TestPhoneModel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if pm := settings.GetPhoneModel(); pm != model.DefaultPhoneModel {
		t.Errorf("Expected default phone model %s, got %s", model.DefaultPhoneModel, pm)
	}

	// Test setting custom value
	settings.SetPhoneModel(model.PhoneModelSamsung)
	if pm := settings.GetPhoneModel(); pm != model.PhoneModelSamsung {
		t.Errorf("Expected phone model %s, got %s", model.PhoneModelSamsung, pm)
	}

	// Unknown stored values reset to default
	app.Preferences().SetString(KeyPhoneModel, "nokia-3310")
	if pm := settings.GetPhoneModel(); pm != model.DefaultPhoneModel {
		t.Errorf("Expected unknown model to reset to default, got %s", pm)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	if len(options) == 0 {
		t.Error("Expected language options to be non-empty")
	}
	if _, ok := options["en"]; !ok {
		t.Error("Expected English to be available")
	}
}
