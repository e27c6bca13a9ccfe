package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

const banner = `
  ╦  ╦┬┌─┐┬ ┬┬ ┬
  ╚╗╔╝│├┤ │││└┬┘
   ╚╝ ┴└─┘└┴┘ ┴
`

type globalFlags struct {
	logLevel string
	jsonLogs bool
	noColor  bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "viewy",
		Short: "Server-side UI toolkit for Go",
		Long: `Viewy builds pages from composable widgets on the server.

Widgets render to a node tree, the tree renders to HTML, and the
stylesheet and script every widget needs are compiled once into
app.css and app.js.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), flags)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		iconsCmd(),
		assetsCmd(),
		serveCmd(),
		renderCmd(),
		versionCmd(),
	)
	return rootCmd
}

func setupLogging(w io.Writer, flags globalFlags) error {
	if flags.noColor {
		errors.DisableColors()
	}
	l, err := logger.New(logger.Options{
		Level:         flags.logLevel,
		HumanReadable: !flags.jsonLogs,
		Writer:        w,
	})
	if err != nil {
		return errors.New("E403").
			WithField("flag", "log-level").
			WithField("value", flags.logLevel).
			WithSuggestion("Use one of debug, info, warn, error").
			Wrap(err)
	}
	logger.SetDefault(l)
	return nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnStyle.Render("⚠"), fmt.Sprintf(format, args...))
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := unit, 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
