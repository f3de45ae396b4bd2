package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shiroyk/domkit/dom"
	"github.com/shiroyk/domkit/fetch"
	"github.com/shiroyk/domkit/lib/config"
	"github.com/spf13/cobra"
)

var (
	queryXPath bool
	queryText  bool
)

var queryCmd = &cobra.Command{
	Use:   "query <selector> [file|url]",
	Short: "print the elements of an HTML document matching a selector",
	Long:  "Reads the HTML file or http(s) URL, or stdin when no file or `-` is given, and prints every match of the CSS selector or XPath expression.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 1 {
			path = args[1]
		}
		markup, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		cfg := config.FromContext(cmd.Context())
		matches, err := query(string(markup), args[0], queryXPath)
		if err != nil {
			return err
		}
		slog.Debug("query", "selector", args[0], "matches", len(matches))

		out := make([]string, len(matches))
		for i, n := range matches {
			el, ok := n.(*dom.Element)
			if ok && !(queryText || cfg.Query.Text) {
				out[i] = el.OuterHTML()
			} else {
				out[i] = n.TextContent()
			}
		}
		if len(out) == 0 {
			return nil
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, cfg.Query.Separator))
		return err
	},
}

func query(markup, expr string, xpath bool) ([]dom.Node, error) {
	root, err := dom.NewDocument(dom.WithLogger(slog.Default())).Parse(markup)
	if err != nil {
		return nil, err
	}
	if xpath {
		return root.QueryXPathAll(expr)
	}
	list, err := root.QuerySelectorAll(expr)
	if err != nil {
		return nil, err
	}
	ret := make([]dom.Node, len(list))
	for i, el := range list {
		ret[i] = el
	}
	return ret, nil
}

// readInput reads the file or URL, or the command input when path is
// empty or `-`.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	if fetch.IsURL(path) {
		return fetch.New(config.FromContext(cmd.Context()).Fetch).Get(cmd.Context(), path)
	}
	file, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(file) //nolint:gosec
}

func init() {
	queryCmd.Flags().BoolVarP(&queryXPath, "xpath", "x", false, "the selector is an XPath expression")
	queryCmd.Flags().BoolVarP(&queryText, "text", "t", false, "print the text content instead of the HTML")
	rootCmd.AddCommand(queryCmd)
}
