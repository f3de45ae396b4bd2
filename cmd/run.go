package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dop251/goja"
	"github.com/shiroyk/domkit/dom"
	"github.com/shiroyk/domkit/jsdom"
	"github.com/shiroyk/domkit/lib/config"
	"github.com/spf13/cobra"
)

var runTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run <script.js>",
	Short: "run a script with the dom global, `-` reads stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		timeout := config.FromContext(cmd.Context()).Script.Timeout
		if runTimeout > 0 {
			timeout = runTimeout
		}
		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		logger := slog.Default()
		vm := jsdom.NewVM(dom.NewDocument(dom.WithLogger(logger)), logger)
		value, err := vm.RunString(ctx, args[0], string(src))
		if err != nil {
			return err
		}
		if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
			return nil
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), value.String())
		return err
	},
}

func init() {
	runCmd.Flags().DurationVarP(&runTimeout, "timeout", "t", 0, "interrupt the script after the duration, overrides the configuration")
	rootCmd.AddCommand(runCmd)
}
