package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/attrs/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌┬┐┌┬┐┬─┐┌─┐
  ├─┤ │  │ ├┬┘└─┐
  ┴ ┴ ┴  ┴ ┴└─└─┘
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attrs",
		Short: "Flatten structured values into HTML attributes",
		Long: `attrs normalizes structured attribute values into flat HTML attributes.

Maps nest into dashed names, lists and sets join with spaces, true becomes
a bare attribute and false or null disappear:

  {"data": {":user_id": 7}, "class": ["btn", "primary"], "disabled": true}

becomes

  data-user-id="7" class="btn primary" disabled

Keys written with a leading ":" are identifier-style and have underscores
turned into dashes. Other keys are used verbatim.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		normalizeCmd(),
		renderCmd(),
		serveCmd(),
		versionCmd(),
	)

	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
