package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires the generation form, the phone-mockup preview, and
// the wallpaper gallery to the gallery and export services. All UI strings
// are localized via Localization.
