package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/pkg/core"
)

var (
	newTitle   string
	newContent string
	newTags    string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [section]",
	Short: "Create a note",
	Long:  `Create a note in the given section (default: sessions). The title defaults to "New note" and is deduplicated with a numeric suffix.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		section := core.SectionSessions
		if len(args) == 1 {
			section = core.Section(args[0])
			if !core.ValidSection(section) {
				fmt.Fprintf(os.Stderr, "Unknown section %q\n", args[0])
				os.Exit(1)
			}
		}

		svc := openService()
		ctx := context.Background()

		note, err := svc.Create(ctx, section)
		if err != nil {
			fatal("Failed to create note", err)
		}

		p := core.Patch{}
		if newTitle != "" {
			p.Title = &newTitle
		}
		if newContent != "" {
			p.Content = &newContent
		}
		if newTags != "" {
			tags := core.ParseTags(newTags)
			p.Tags = &tags
		}
		if p.Title != nil || p.Content != nil || p.Tags != nil {
			if err := svc.Update(ctx, note.ID, p); err != nil {
				fatal("Failed to update note", err)
			}
			note = svc.Note(note.ID)
		}

		fmt.Printf("%s  %s/%s\n", note.ID, note.Section, note.Slug)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
	newCmd.Flags().StringVar(&newTags, "tags", "", "Comma-separated tags")
}
