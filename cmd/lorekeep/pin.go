package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [ref]",
	Short: "Toggle a note's pin",
	Long:  `Toggle the pinned flag. Pinned notes sort ahead of everything else in their section.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		note := resolveNote(svc, args[0])

		if err := svc.TogglePin(context.Background(), note.ID); err != nil {
			fatal("Failed to toggle pin", err)
		}

		updated := svc.Note(note.ID)
		if updated.Pinned {
			fmt.Printf("Pinned %q\n", updated.Title)
		} else {
			fmt.Printf("Unpinned %q\n", updated.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
