package cmd

import (
	"fmt"

	"github.com/shiroyk/domkit"
	"github.com/spf13/cobra"
)

var hCmd = &cobra.Command{
	Use:   "h <selector> [text...]",
	Short: "build an element from a selector and print its HTML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		children := make([]any, 0, len(args)-1)
		for _, text := range args[1:] {
			children = append(children, text)
		}
		el, err := domkit.H(args[0], children...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), el.HTML())
		return err
	},
}

func init() {
	rootCmd.AddCommand(hCmd)
}
