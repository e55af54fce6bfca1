package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"calc-tool/internal/cli"
	"calc-tool/internal/config"
	"calc-tool/internal/tui"
	"calc-tool/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return // help was printed
		}
		runGUI("")
		return
	}

	if cfg.OneShot() {
		if err := cli.Run(os.Stdout, *cfg); err != nil {
			printError(err)
			os.Exit(1)
		}
		return
	}

	if cfg.TUI {
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runGUI(cfg.ConfigPath)
}

func runGUI(configPath string) {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fyne.LogError("locate settings", err)
		}
		configPath = p
	}

	settings := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fyne.LogError("load settings, using defaults", err)
		}
		settings = loaded
	}

	a := app.NewWithID("com.calc-tool.gui")
	win := ui.BuildMainWindow(a, settings)
	win.ShowAndRun()
}

func printError(err error) {
	var ae *cli.AlertError
	if errors.As(err, &ae) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", ae.Title, ae.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
