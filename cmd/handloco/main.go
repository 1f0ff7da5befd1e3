package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Versifine/handloco/internal/config"
	"github.com/Versifine/handloco/internal/logger"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "handloco",
	Short:         "Hand-swing locomotion interpreter",
	Long:          `Turns hand-tracking telemetry into avatar run and turn commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath, cmd.Root().PersistentFlags().Changed("config"))
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Logging.Level = logLevel
		}
		logger.Init(logger.Config{
			Level:  loaded.Logging.Level,
			Format: loaded.Logging.Format,
			File:   loaded.Logging.File,
		})
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(replayCmd, checkCmd, synthCmd, consoleCmd)
}

// loadConfig falls back to defaults when the default config file is absent.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	loaded, err := config.Load(path)
	if os.IsNotExist(err) && !explicit {
		loaded, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, err
	}
	return loaded, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.L().Error("Command failed", "error", err)
	}
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
