package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the blob for external changes",
	Long: `Watch the notes blob and reload on every external modification,
printing each change event. Useful while editing the JSON by hand or
syncing it from another machine. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println("Watching for changes (Ctrl-C to stop)...")
		for event := range events {
			fmt.Println(event.String())
			if err := svc.Reload(ctx); err != nil {
				slog.Error("reload failed", "error", err)
				continue
			}
			fmt.Printf("Reloaded: %d notes\n", len(svc.Store().Items))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
