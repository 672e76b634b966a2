package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow [title]",
	Short: "Follow a wiki link",
	Long: `Follow a [[Title]] link by its text. If a note with that title exists
(case-insensitive) it is printed; otherwise a stub note tagged "stub" is
created in the sessions section so the link never dangles.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		note, err := svc.FollowLink(context.Background(), args[0])
		if err != nil {
			fatal("Failed to follow link", err)
		}

		fmt.Printf("%s  %s/%s  %s\n", note.ID, note.Section, note.Slug, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(followCmd)
}
