package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wallstudio/wallpaper-studio/internal/api"
	"github.com/wallstudio/wallpaper-studio/internal/config"
	"github.com/wallstudio/wallpaper-studio/internal/export"
	"github.com/wallstudio/wallpaper-studio/internal/gallery"
	"github.com/wallstudio/wallpaper-studio/internal/platform"
	"github.com/wallstudio/wallpaper-studio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.wallstudio.wallpaper-studio"
	AppName = "Wallpaper Studio"
	AppIcon = "wallpaper-studio.png"

	WindowWidth  = 1000
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Wallpaper Studio v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	saveDir := settings.GetSaveDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		fmt.Printf("failed to ensure save dir: %v\n", err)
	}

	backend := api.NewClient(settings.GetAPIBaseURL())
	gallerySvc := gallery.NewService(backend)
	exportSvc := export.NewService(saveDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, gallerySvc, exportSvc)

	// Show and run
	myWindow.ShowAndRun()
}
