package app

import (
	"context"
	"fmt"

	"github.com/Sh1nto/quasar/internal/config"
	"github.com/Sh1nto/quasar/internal/prefs"
	"github.com/Sh1nto/quasar/internal/router"
	"github.com/Sh1nto/quasar/internal/ui"
)

// Options configure the quasar application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/quasar/prefs.toml
	StartPath  string // initial location; empty starts at /dashboard
}

// Run boots the quasar TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	table := router.NewTable(
		router.Route{Path: "/dashboard", Name: "dashboard"},
		router.Route{Path: "/media", Name: "media"},
		router.Route{Path: "/media/photos", Name: "photos"},
		router.Route{Path: "/settings", Name: "settings"},
		router.Route{Path: "/settings/profile", Name: "profile"},
	)

	start := opts.StartPath
	if start == "" {
		start = "/dashboard"
	}
	history := router.NewHistory(table, start)

	uiOpts := ui.Options{
		Config:     cfg,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		History:    history,
		Dispatcher: ui.NewDispatcher(),
	}
	return ui.Run(ctx, uiOpts)
}
