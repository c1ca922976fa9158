// Command colladarender renders 3D mesh files as top-down elevation maps, colored by height.
//
//	colladarender [-o|--output PATH] INPUT_PATH
//
// INPUT_PATH is either a single mesh file, or a directory whose (non-hidden) files are all rendered together.
package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/solarlune/colladarender"
	"github.com/solarlune/colladarender/colors"
	"github.com/solarlune/colladarender/internal/logx"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitInterrupted = 1
	ExitFailure     = 1
	ExitUserError   = 2
)

// DefaultOutputDir is where images are written when no output path is given.
const DefaultOutputDir = "renderings"

func main() {

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signals
		logInterrupted()
		os.Exit(ExitInterrupted)
	}()

	os.Exit(run(os.Args[1:], os.Stderr))

}

// logInterrupted reports that the command was stopped by a signal. It logs at Info, so the message has no level prefix.
func logInterrupted() {
	slog.Info("Operation interrupted.")
}

// run runs the command with the given arguments, logging to stderr, and returns the exit code.
func run(args []string, stderr io.Writer) int {

	logx.UserLevel = slog.LevelInfo
	logx.SetDefaultLogger(stderr)

	cmd := newCommand(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	switch {
	case err == nil:
		return ExitSuccess
	case colladarender.IsUserError(err):
		slog.Error(err.Error())
		return ExitUserError
	default:
		slog.Error(err.Error())
		return ExitFailure
	}

}

func newCommand(stderr io.Writer) *cobra.Command {

	flagged := DefaultConfig()

	var configPath string
	var debug, verbose, quiet, watching bool

	cmd := &cobra.Command{
		Use:   "colladarender [flags] INPUT_PATH",
		Short: "Render 3D mesh files as top-down height maps",
		Long: "Render 3D mesh files as top-down height maps.\n\n" +
			"INPUT_PATH is a mesh file (" + strings.Join(colladarender.SupportedExtensions(), ", ") + ") or a directory of them.\n" +
			"Palettes: " + strings.Join(colors.Names(), ", ") + "\n" +
			"Easings: " + strings.Join(colladarender.EasingNames(), ", "),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return colladarender.WrapUserError(err, "usage: %s", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {

			logx.UserLevel = logx.LevelFromFlags(debug, verbose, quiet)
			logx.SetDefaultLogger(stderr)

			cfg := DefaultConfig()

			if configPath != "" {
				if err := cfg.Open(configPath); err != nil {
					return err
				}
			}

			cfg.ApplyFlags(cmd.Flags(), flagged)

			err := render(cfg, args[0])

			if !watching {
				return err
			}

			if err != nil {
				if !colladarender.IsUserError(err) {
					return err
				}
				slog.Error(err.Error())
			}

			return watch(cmd.Context(), cfg, args[0])

		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return colladarender.WrapUserError(err, "invalid flags")
	})

	fs := cmd.Flags()
	flagged.BindFlags(fs)
	fs.StringVar(&configPath, "config", "", "TOML file to read settings from (flags override it)")
	fs.BoolVar(&debug, "debug", false, "log debugging details")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log progress (the default)")
	fs.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&watching, "watch", "w", false, "keep running, rendering again whenever the input changes")

	return cmd

}

func render(cfg *Config, input string) error {

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	inputs, err := InputPaths(input)
	if err != nil {
		return err
	}

	output := outputPath(cfg, input)

	slog.Info("Rendering " + output + " ...")

	return colladarender.Render(output, inputs, opts)

}

// outputPath returns where the image rendered from input goes: the configured output, or DefaultOutputPath(input).
func outputPath(cfg *Config, input string) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return DefaultOutputPath(input)
}

// InputPaths returns the mesh files to render for the given input path. A file is returned as-is; for a directory,
// every file directly inside it whose name doesn't start with a dot is returned, sorted by name.
func InputPaths(input string) ([]string, error) {

	info, err := os.Stat(input)
	if err != nil {
		return nil, colladarender.WrapUserError(err, "can't read input")
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, colladarender.WrapUserError(err, "can't read input directory")
	}

	paths := []string{}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") || entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(input, entry.Name()))
	}

	slices.Sort(paths)

	return paths, nil

}

// DefaultOutputPath returns the path an image rendered from input is saved to when no output is given:
// renderings/<input name without extension>.png.
func DefaultOutputPath(input string) string {
	base := filepath.Base(filepath.Clean(input))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(DefaultOutputDir, stem+".png")
}
