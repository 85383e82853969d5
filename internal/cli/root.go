// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/indexables/internal/app"
	"github.com/law-makers/indexables/internal/config"
	"github.com/law-makers/indexables/internal/domain"
	headersutil "github.com/law-makers/indexables/internal/utils/headers"
	"github.com/law-makers/indexables/internal/ui"
)

// Exit codes
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitParse    = 2
	ExitFetch    = 3
	ExitInternal = 4
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "indexables",
	Short: "List the same-domain links found on a site's landing page",
	Long: `Indexables resolves a domain to its https origin, fetches the landing page once
and prints every link on it that belongs to the same domain.`,
	Version: "0.1.0",
}

// Execute runs the root command and exits with a code matching the failure kind.
// This is called by main.main().
func Execute(ctx context.Context) {
	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

// run executes args and closes the application whether or not the command failed.
// Errors are printed to stderr here since cobra's own error output is silenced.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	closeApp(cmd)
	if err != nil {
		fmt.Fprintln(stderr, ui.Error("Error: "+err.Error()))
	}
	return exitCode(err)
}

// closeApp releases the application stored on cmd, if PersistentPreRunE created one
func closeApp(cmd *cobra.Command) {
	appCtx := GetAppFromCmd(cmd)
	if appCtx == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), appCtx.Config.HTTPTimeout)
	defer cancel()
	if err := appCtx.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to close application")
	}
	SetApp(cmd, nil)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrParse):
		return ExitParse
	case errors.Is(err, domain.ErrFetch):
		return ExitFetch
	case errors.Is(err, domain.ErrInternal):
		return ExitInternal
	default:
		return ExitFailure
	}
}

func init() {
	// Lazily initialize the application before running commands (avoid starting app for -h/help)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		// Flag errors are reported with usage; everything after this is a runtime failure
		cmd.SilenceUsage = true

		var headerValues []string
		if cmd.Flags().Lookup("header") != nil {
			headerValues, _ = cmd.Flags().GetStringArray("header")
		}

		appCtx, err := app.New(cmd.Context(), cfg, app.Options{
			Headers:        headersutil.ParseHeaders(headerValues),
			ProgressWriter: os.Stderr,
		})
		if err != nil {
			return err
		}

		SetApp(cmd, appCtx)
		return nil
	}

	rootCmd.SilenceErrors = true

	// Register centralized flags
	config.RegisterFlags(rootCmd)

	// Customize help and version flag descriptions
	rootCmd.Flags().BoolP("help", "h", false, "Help for Indexables")
	rootCmd.Flags().Bool("version", false, "Version for Indexables")

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelp(os.Stdout, cmd, true)
	})
	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		printHelp(os.Stderr, cmd, false)
		return nil
	})
}

// printHelp renders colorized help. The short form used for usage errors
// skips the descriptions and examples.
func printHelp(w io.Writer, cmd *cobra.Command, full bool) {
	if full {
		fmt.Fprintf(w, "\n%s\n", ui.Colorize(ui.ColorBold+ui.ColorCyan, strings.ToUpper(cmd.Name())))
		if cmd.Short != "" {
			fmt.Fprintf(w, "%s\n", cmd.Short)
		}
		if cmd.Long != "" && cmd.Long != cmd.Short {
			fmt.Fprintf(w, "\n%s\n", cmd.Long)
		}
	}

	fmt.Fprintf(w, "\n%s\n", ui.Bold("Usage"))
	if cmd.Runnable() {
		fmt.Fprintf(w, "  %s\n", ui.Colorize(ui.ColorCyan, cmd.UseLine()))
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "  %s %s %s\n",
			ui.Colorize(ui.ColorCyan, cmd.CommandPath()),
			ui.Colorize(ui.ColorYellow, "<command>"),
			ui.Colorize(ui.ColorDim, "[flags]"))
	}

	if full && cmd.HasExample() {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Examples"))
		for _, example := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(example)
			switch {
			case trimmed == "":
				continue
			case strings.HasPrefix(trimmed, "#"):
				fmt.Fprintf(w, "  %s\n", ui.Colorize(ui.ColorDim, trimmed))
			default:
				fmt.Fprintf(w, "  %s\n", ui.Colorize(ui.ColorGreen, "$ "+trimmed))
			}
		}
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Commands"))

		maxLen := 0
		var available []*cobra.Command
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() && c.Name() != "help" {
				available = append(available, c)
				if len(c.Name()) > maxLen {
					maxLen = len(c.Name())
				}
			}
		}

		for _, c := range available {
			padding := strings.Repeat(" ", maxLen-len(c.Name())+2)
			fmt.Fprintf(w, "  %s%s%s\n",
				ui.Colorize(ui.ColorCyan, c.Name()), padding, ui.Colorize(ui.ColorDim, c.Short))
		}
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Flags"))
		printFlags(w, cmd.LocalFlags().FlagUsages())
	}

	if full && cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(w, "\n%s\n", ui.Bold("Global Flags"))
		printFlags(w, cmd.InheritedFlags().FlagUsages())
	}

	fmt.Fprintln(w)
}

// printFlags prints flag usages with the flag names highlighted
func printFlags(w io.Writer, flagUsages string) {
	for _, line := range strings.Split(flagUsages, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "-") {
			fmt.Fprintf(w, "      %s\n", ui.Colorize(ui.ColorDim, trimmed))
			continue
		}

		flagPart, descPart, ok := strings.Cut(trimmed, "  ")
		if !ok {
			fmt.Fprintf(w, "  %s\n", ui.Colorize(ui.ColorGreen, trimmed))
			continue
		}
		fmt.Fprintf(w, "  %-30s %s\n",
			ui.Colorize(ui.ColorGreen, strings.TrimSpace(flagPart)),
			ui.Colorize(ui.ColorDim, strings.TrimSpace(descPart)))
	}
}
