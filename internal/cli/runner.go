package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/dogwalk/internal/config"
	"github.com/idilsaglam/dogwalk/internal/logging"
	"github.com/idilsaglam/dogwalk/internal/snapshot"
	"github.com/idilsaglam/dogwalk/internal/tui"
	"github.com/idilsaglam/dogwalk/internal/ui"
	"github.com/idilsaglam/dogwalk/internal/walk"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// Swapped out in tests.
var (
	runInteractive = tui.Run
	interactiveOut = isTerminal
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(config.New())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return 2
	}
	return 1
}

// NewCommand builds the dogwalk root command reading settings through v.
func NewCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dogwalk",
		Short: "Schedule and tick off today's dog walks.",
		Long: `dogwalk keeps a list of today's dog walks in your terminal.

Walks live only for the session. Use --json to print the final
schedule when you quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return usageError{err}
			}
			return schedule(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.String(config.KeyTheme, "classic", "color theme: classic, neon or mono")
	f.String(config.KeyColor, string(ui.ColorAuto), "color output: auto, always or never")
	f.Bool(config.KeyPlain, false, "print the schedule once instead of starting the interactive view")
	f.Bool(config.KeyJSON, false, "print the final schedule as JSON on exit (replaces the plain render)")
	f.String(config.KeyLogFile, "", "append logs to this file")
	f.String(config.KeyLogLevel, "info", "log level: debug, info, warn or error")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dogwalk version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dogwalk %s\n", Version)
		},
	}
}

func schedule(ctx context.Context, cfg *config.Config, out io.Writer) error {
	ui.SetColorMode(cfg.Color)

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	state := walk.New(walk.NewID)
	if !cfg.Plain && interactiveOut(out) {
		state, err = runInteractive(ctx, state, tui.Options{
			Theme:  cfg.Theme,
			IDs:    walk.NewID,
			Logger: log,
		})
		if err != nil {
			return err
		}
	} else if !cfg.JSON {
		log.Debug("rendering plain schedule", "walks", len(state.Walks))
		fmt.Fprintln(out, ui.Render(cfg.Theme, ui.Frame{State: state, Cursor: -1}))
	}

	if cfg.JSON {
		if err := snapshot.Write(out, state); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✖ "+msg))
}
