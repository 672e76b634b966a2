package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep"
	"github.com/lorekeep/lorekeep/pkg/core"
)

var (
	dataFile string
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lorekeep",
	Short: "A campaign notebook engine for tabletop games",
	Long: `lorekeep keeps your campaign notes in a single JSON blob.
Notes live in fixed sections (story, sessions, quests, npcs, locations,
items, lore), link to each other with [[Title]] markers, and persist
atomically on every change.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Path to the notes blob (default: nearest lorekeep.json, else user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// resolveDataPath picks the blob location: explicit flag, then the
// nearest lorekeep.json walking upward, then the user config dir.
func resolveDataPath() (string, error) {
	if dataFile != "" {
		return dataFile, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if p, ok := lorekeep.FindDataFile(wd); ok {
		return p, nil
	}

	return lorekeep.DefaultDataPath()
}

// openService wires a service over the resolved blob path.
func openService() *core.Service {
	path, err := resolveDataPath()
	if err != nil {
		fatal("Failed to resolve data path", err)
	}

	svc, err := lorekeep.New(path, lorekeep.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to open notes", err)
	}
	return svc
}

// resolveNote turns a user-supplied ref (id, section/slug address, or
// glob) into a note, or exits.
func resolveNote(svc *core.Service, ref string) *core.Note {
	n := svc.Resolve(ref)
	if n == nil {
		fmt.Fprintf(os.Stderr, "No note matches %q\n", ref)
		os.Exit(1)
	}
	return n
}
