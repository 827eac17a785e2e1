package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGenerate          = "generate"
	KeyGenerating        = "generating"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEnterPrompt       = "enter_prompt"
	KeyStyle             = "style"
	KeyNoStyle           = "no_style"
	KeyPhoneModel        = "phone_model"
	KeyGalleryTitle      = "gallery_title"
	KeyGalleryEmpty      = "gallery_empty"
	KeyGalleryLoading    = "gallery_loading"
	KeyReloadGallery     = "reload_gallery"
	KeyRefreshPreview    = "refresh_preview"
	KeyNoWallpaper       = "no_wallpaper"
	KeyAPIBaseURL        = "api_base_url"
	KeySaveDirectory     = "save_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyPleaseEnterPrompt = "please_enter_prompt"
	KeyWallpaperReady    = "wallpaper_ready"
	KeyGenerationFailed  = "generation_failed"
	KeyWallpaperSaved    = "wallpaper_saved"
	KeySaveFailed        = "save_failed"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Wallpaper Studio",
		KeyGenerate:          "Generate",
		KeyGenerating:        "Generating wallpaper...",
		KeyDownload:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEnterPrompt:       "Describe your wallpaper (e.g. sunset over mountains)",
		KeyStyle:             "Style",
		KeyNoStyle:           "No style",
		KeyPhoneModel:        "Phone",
		KeyGalleryTitle:      "Your Wallpapers",
		KeyGalleryEmpty:      "No wallpapers yet. Generate your first one!",
		KeyGalleryLoading:    "Loading wallpapers...",
		KeyReloadGallery:     "Reload Gallery",
		KeyRefreshPreview:    "Refresh Preview",
		KeyNoWallpaper:       "Your wallpaper will appear here",
		KeyAPIBaseURL:        "Backend URL",
		KeySaveDirectory:     "Save Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyPleaseEnterPrompt: "Please enter a prompt",
		KeyWallpaperReady:    "Wallpaper ready",
		KeyGenerationFailed:  "Generation failed",
		KeyWallpaperSaved:    "Wallpaper saved",
		KeySaveFailed:        "Failed to save wallpaper",
		KeyReveal:            "Reveal",
		KeyOpen:              "Open",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Студия Обоев",
		KeyGenerate:          "Создать",
		KeyGenerating:        "Создание обоев...",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEnterPrompt:       "Опишите обои (например: закат в горах)",
		KeyStyle:             "Стиль",
		KeyNoStyle:           "Без стиля",
		KeyPhoneModel:        "Телефон",
		KeyGalleryTitle:      "Ваши обои",
		KeyGalleryEmpty:      "Пока нет обоев. Создайте первые!",
		KeyGalleryLoading:    "Загрузка обоев...",
		KeyReloadGallery:     "Обновить галерею",
		KeyRefreshPreview:    "Обновить превью",
		KeyNoWallpaper:       "Здесь появятся ваши обои",
		KeyAPIBaseURL:        "Адрес сервера",
		KeySaveDirectory:     "Папка сохранения",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyPleaseEnterPrompt: "Пожалуйста, введите описание",
		KeyWallpaperReady:    "Обои готовы",
		KeyGenerationFailed:  "Ошибка генерации",
		KeyWallpaperSaved:    "Обои сохранены",
		KeySaveFailed:        "Не удалось сохранить обои",
		KeyReveal:            "Показать",
		KeyOpen:              "Открыть",
	}
}
