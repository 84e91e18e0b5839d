package gui

import (
	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
	"github.com/isahakgaming-beep/thunderclient/internals/launcher"
)

//go:embed all:frontend/dist
var assets embed.FS

func Start(orch *auth.Orchestrator, l *launcher.Launcher) {
	// Create an instance of the app structure
	app := NewApp()
	app.Orch = orch
	app.Launcher = l

	// Create application with options
	err := wails.Run(&options.App{
		Title:     "Thunder Client",
		Width:     1200,
		Height:    800,
		MinWidth:  400,
		MinHeight: 300,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
		Linux: &linux.Options{
			WebviewGpuPolicy: linux.WebviewGpuPolicyOnDemand,
		},
		Mac: &mac.Options{
			WindowIsTranslucent:  true,
			WebviewIsTransparent: true,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
