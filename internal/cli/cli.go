package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Chandra-Moulii/project-planner/internal/app"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/config"
	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/logging"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Options configure NewCLI. Zero values fall back to the config file.
type Options struct {
	ConfigPath string // Empty uses $XDG_CONFIG_HOME/planner/config.yaml
	DBPath     string // Overrides the config's data_path
	Logger     *slog.Logger
	Stderr     io.Writer // Receives startup warnings; nil uses os.Stderr
	AppOptions []app.Option
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	logFile io.Closer
}

// NewCLI loads the config, opens the database and rehydrates the planner
// state from it.
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.DBPath != "" {
		cfg.DataPath = opts.DBPath
	}

	c := &CLI{Config: cfg}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
		if cfg.DataPath != database.MemoryPath {
			closer, err := logging.Init(cfg.LogPath(), cfg.SlogLevel())
			if err != nil {
				stderr := opts.Stderr
				if stderr == nil {
					stderr = os.Stderr
				}
				fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
			} else {
				c.logFile = closer
				logger = logging.Logger
			}
		}
	}

	store, err := database.OpenSQLite(ctx, cfg.DataPath)
	if err != nil {
		c.closeLog()
		return nil, fmt.Errorf("%w: failed to open database: %w", models.ErrPersistence, err)
	}

	appOpts := append([]app.Option{
		app.WithLogger(logger),
		app.WithPalette(cfg.Palette),
	}, opts.AppOptions...)

	a, err := app.New(ctx, store, appOpts...)
	if err != nil {
		_ = store.Close()
		c.closeLog()
		return nil, err
	}
	c.App = a
	c.initStyles()
	return c, nil
}

// NewWithApp wraps an existing application container. The package styles
// are left as they are.
func NewWithApp(a *app.App, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{App: a, Config: cfg}
}

func (c *CLI) initStyles() {
	light := c.App.Snapshot().Preferences.Theme == models.ThemeLight
	styles.Init(c.Config.SchemeFor(light))
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var errs []error
	if c.App != nil {
		errs = append(errs, c.App.Close())
	}
	errs = append(errs, c.closeLog())
	return errors.Join(errs...)
}

func (c *CLI) closeLog() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}
