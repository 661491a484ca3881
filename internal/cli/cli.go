// Package cli implements the untangle command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/untangle/pkg/buildinfo"
	"github.com/matzehuels/untangle/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "untangle"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "untangle minimizes edge crossings in layered graphs",
		Long:         `untangle reorders the nodes within each layer of a k-partite graph to minimize weighted edge crossings, using a simulated-annealing reducer that optionally respects a nested grouping of each layer's nodes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.prepareCommand())
	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the Cache backend selected in cfg: "redis", "null", or a
// file cache under [cacheDir] for "file" and any other value, including an
// empty one. noCache forces a null cache, and so does a failure to resolve
// the cache directory; a failure to open the file cache is returned.
func newCache(ctx context.Context, cfg CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch cfg.Backend {
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	case "null":
		return cache.NewNullCache(), nil
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/untangle/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
