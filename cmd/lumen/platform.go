package main

import (
	"flag"
	"fmt"
	"os"
)

func runPlatform(args []string) int {
	fs := flag.NewFlagSet("platform", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to config file (default: ~/.config/lumen/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lumen platform")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the selected platform backend and which window attributes it honors.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	level, _ := cfg.LogLevel()
	logger := newLogger(level)

	eng, err := newEngine(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer eng.Close()

	p := eng.Platform()
	fmt.Printf("name:      %s\n", p.Name())
	fmt.Printf("kind:      %s\n", p.Kind())
	fmt.Printf("headless:  %v\n", p.IsHeadless())
	if dark, known := p.IsDarkMode(); known {
		fmt.Printf("dark_mode: %v\n", dark)
	} else {
		fmt.Printf("dark_mode: unknown\n")
	}

	sup := p.SupportedAttributes()
	fmt.Println("supported_attributes:")
	for _, row := range []struct {
		name string
		ok   bool
	}{
		{"title", sup.Title},
		{"size", sup.Size},
		{"position", sup.Position},
		{"has_close_button", sup.HasCloseButton},
		{"has_minimize_button", sup.HasMinimizeButton},
		{"has_maximize_button", sup.HasMaximizeButton},
		{"show_drop_shadow", sup.ShowDropShadow},
		{"show_border", sup.ShowBorder},
		{"show_title_bar", sup.ShowTitleBar},
		{"initially_disabled", sup.InitiallyDisabled},
		{"is_dialog_box", sup.IsDialogBox},
		{"initially_minimized", sup.InitiallyMinimized},
		{"resizable", sup.Resizable},
		{"has_system_menu", sup.HasSystemMenu},
		{"initially_visible", sup.InitiallyVisible},
	} {
		fmt.Printf("  %-20s %v\n", row.name+":", row.ok)
	}

	return 0
}
