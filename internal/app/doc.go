// Package app is the composition root for the quasar application.
//
// Run wires the pieces together in order:
//
//  1. config.Load reads the strip configuration from ~/.config/quasar/config.toml
//  2. prefs.Load restores the saved theme and last active tab
//  3. router.NewTable declares the demo routes; router.NewHistory positions
//     the location at the start path
//  4. ui.NewDispatcher bridges the tab engine's deferred work into the
//     Bubble Tea update loop
//  5. ui.Run starts the TUI and blocks until exit or context cancellation
//
// The tab engine itself lives in internal/tabs and never touches the
// terminal; everything it needs from the outside world arrives through the
// Element, IndicatorTarget, Scheduler and LocationSource interfaces that the
// ui and router packages implement.
package app
