package prefs

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// PrefsCmd returns the prefs parent command
func PrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cmd.AddCommand(ThemeCmd())
	cmd.AddCommand(SidebarCmd())

	return cmd
}

type prefsJSON struct {
	Theme       models.Theme `json:"theme"`
	SidebarOpen bool         `json:"sidebar_open"`
}

func toJSON(p models.Preferences) prefsJSON {
	return prefsJSON{Theme: p.Theme, SidebarOpen: p.SidebarOpen}
}

func sidebarState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func printPrefs(w io.Writer, p models.Preferences) {
	fmt.Fprintf(w, "Theme:   %s\n", p.Theme)
	fmt.Fprintf(w, "Sidebar: %s\n", sidebarState(p.SidebarOpen))
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	p := cliInstance.App.PreferenceService.Get(ctx)
	return formatter.Success(toJSON(p), []string{string(p.Theme), sidebarState(p.SidebarOpen)}, func(w io.Writer) {
		printPrefs(w, p)
	})
}

// ThemeCmd returns the prefs theme subcommand
func ThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|system|toggle]",
		Short: "Show, set or toggle the theme",
		Long: `Without an argument the current theme is printed. "toggle" switches
dark to light and anything else to dark.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "system", "toggle"},
		RunE:      runTheme,
	}
}

func runTheme(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	svc := cliInstance.App.PreferenceService

	var p models.Preferences
	switch {
	case len(args) == 0:
		p = svc.Get(ctx)
	case strings.EqualFold(args[0], "toggle"):
		p, err = svc.ToggleTheme(ctx)
	default:
		theme, perr := models.ParseTheme(strings.ToLower(args[0]))
		if perr != nil {
			return formatter.Fail(perr)
		}
		p, err = svc.SetTheme(ctx, theme)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(p), []string{string(p.Theme)}, func(w io.Writer) {
		if len(args) == 0 {
			fmt.Fprintf(w, "Theme: %s\n", p.Theme)
			return
		}
		fmt.Fprintf(w, "Theme set to %s\n", p.Theme)
	})
}

// SidebarCmd returns the prefs sidebar subcommand
func SidebarCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "sidebar [open|closed|toggle]",
		Short:     "Show, set or toggle the sidebar state",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"open", "closed", "toggle"},
		RunE:      runSidebar,
	}
}

func runSidebar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	svc := cliInstance.App.PreferenceService

	var p models.Preferences
	if len(args) == 0 {
		p = svc.Get(ctx)
	} else {
		switch strings.ToLower(args[0]) {
		case "toggle":
			p, err = svc.ToggleSidebar(ctx)
		case "open":
			p, err = svc.SetSidebar(ctx, true)
		case "closed", "close":
			p, err = svc.SetSidebar(ctx, false)
		default:
			return formatter.Fail(cli.Usagef("invalid sidebar state %q (must be: open, closed, toggle)", args[0]))
		}
		if err != nil {
			return formatter.Fail(err)
		}
	}

	state := sidebarState(p.SidebarOpen)
	return formatter.Success(toJSON(p), []string{state}, func(w io.Writer) {
		fmt.Fprintf(w, "Sidebar: %s\n", state)
	})
}
