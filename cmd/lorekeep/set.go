package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/pkg/core"
)

var (
	setTitle       string
	setContent     string
	setContentFile string
	setTags        string
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set [ref]",
	Short: "Update a note",
	Long:  `Update a note's title, content or tags. Only the flags you pass are changed; setting the title recomputes the slug.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if setContent != "" && setContentFile != "" {
			fmt.Fprintln(os.Stderr, "Use either --content or --content-file, not both")
			os.Exit(1)
		}

		svc := openService()
		note := resolveNote(svc, args[0])

		p := core.Patch{}
		if cmd.Flags().Changed("title") {
			p.Title = &setTitle
		}
		if cmd.Flags().Changed("content") {
			p.Content = &setContent
		}
		if setContentFile != "" {
			data, err := os.ReadFile(setContentFile)
			if err != nil {
				fatal("Failed to read content file", err)
			}
			content := string(data)
			p.Content = &content
		}
		if cmd.Flags().Changed("tags") {
			tags := core.ParseTags(setTags)
			p.Tags = &tags
		}

		if p.Title == nil && p.Content == nil && p.Tags == nil {
			fmt.Fprintln(os.Stderr, "Nothing to change")
			os.Exit(1)
		}

		if err := svc.Update(context.Background(), note.ID, p); err != nil {
			fatal("Failed to update note", err)
		}

		updated := svc.Note(note.ID)
		fmt.Printf("%s  %s/%s\n", updated.ID, updated.Section, updated.Slug)
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVarP(&setTitle, "title", "t", "", "New title")
	setCmd.Flags().StringVarP(&setContent, "content", "c", "", "New content")
	setCmd.Flags().StringVar(&setContentFile, "content-file", "", "Read new content from a file")
	setCmd.Flags().StringVar(&setTags, "tags", "", "Comma-separated tags (replaces existing)")
}
