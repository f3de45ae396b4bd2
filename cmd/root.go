package cmd

import (
	"log/slog"

	"github.com/shiroyk/domkit/lib/config"
	"github.com/shiroyk/domkit/lib/logger"
	"github.com/spf13/cobra"
)

var (
	configArg string
	debugArg  bool
)

var rootCmd = &cobra.Command{
	Use:          "domkit",
	Short:        "domkit builds, queries and scripts HTML fragments.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.ReadConfig(configArg)
		if err != nil {
			return err
		}
		level := cfg.Level()
		if debugArg {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(logger.NewConsoleHandler(cmd.ErrOrStderr(), level, cfg.Log.NoColor)))
		cmd.SetContext(config.NewContext(cmd.Context(), cfg))
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configArg, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debugArg, "debug", "d", false, "output the debug log")
}
