// Command unitext computes synchronized font sizes for groups of text
// boxes described in YAML layout documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all subcommands of a single invocation.
type app struct {
	root     *cobra.Command
	viper    *viper.Viper
	logger   *zap.Logger
	settings Settings

	// global flags
	configPath string
	verbose    bool
}

func newApp() *app {
	a := &app{viper: newViper(), logger: zap.NewNop()}
	a.root = &cobra.Command{
		Use:   "unitext",
		Short: "Synchronized font sizes for auto-fitting text boxes",
		Long: `unitext finds the largest font size at which every text box of a group
fits its content, so all the boxes can display text at the same size.

Sizes are bounded by a configurable [min, max] range. Settings can be
given through flags, UNITEXT_* environment variables or a config file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/unitext/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.Int("min", 0, "minimum font size")
	flags.Int("max", 0, "maximum font size")
	flags.String("font", "", "path to a .ttf or .otf font (default Go Regular)")
	a.bindFlag("sizes.min", flags.Lookup("min"))
	a.bindFlag("sizes.max", flags.Lookup("max"))
	a.bindFlag("font.path", flags.Lookup("font"))

	a.root.AddCommand(a.newPlanCmd(), a.newFitCmd())
	return a
}

// Loads settings and builds the logger before running any subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if a.verbose {
		config.Level.SetLevel(zapcore.DebugLevel)
	}
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.logger = logger

	settings, err := loadSettings(a.viper, a.configPath)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger.Debug("settings loaded",
		zap.Int("min", settings.MinSize),
		zap.Int("max", settings.MaxSize),
		zap.String("font", settings.FontPath),
		zap.Int("cache", settings.CacheEntries))
	return nil
}

func main() {
	if err := newApp().root.Execute(); err != nil {
		os.Exit(1)
	}
}
