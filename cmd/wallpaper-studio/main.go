package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wallstudio/wallpaper-studio/internal/api"
	"github.com/wallstudio/wallpaper-studio/internal/config"
	"github.com/wallstudio/wallpaper-studio/internal/export"
	"github.com/wallstudio/wallpaper-studio/internal/gallery"
	"github.com/wallstudio/wallpaper-studio/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.wallstudio.wallpaper-studio")
	myWindow := myApp.NewWindow("Wallpaper Studio")
	myWindow.Resize(fyne.NewSize(1000, 640))

	// Create and setup UI
	settings := config.NewSettings(myApp)
	backend := api.NewClient(settings.GetAPIBaseURL())
	ui.NewRootUI(myWindow, myApp, gallery.NewService(backend), export.NewService(settings.GetSaveDirectory()))

	// Show and run
	myWindow.ShowAndRun()
}
