package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [ref]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		note := resolveNote(svc, args[0])

		if err := svc.Delete(context.Background(), note.ID); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Deleted %q (%s/%s)\n", note.Title, note.Section, note.Slug)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
