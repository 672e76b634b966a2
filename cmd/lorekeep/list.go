package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/pkg/core"
)

var (
	listJSON   bool
	listTag    string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list [section]",
	Short: "List notes",
	Long:  `List notes in a section (default: sessions), pinned first then most recently updated. Filters narrow by tag and by text search over title, content and tags.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		if len(args) == 1 {
			section := core.Section(args[0])
			if !core.ValidSection(section) {
				fmt.Fprintf(os.Stderr, "Unknown section %q\n", args[0])
				os.Exit(1)
			}
			svc.SetSection(section)
		}
		svc.SetTagFilter(listTag)
		svc.SetQuery(listSearch)

		notes := svc.VisibleNotes()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range notes {
			marker := " "
			if n.Pinned {
				marker = "*"
			}
			fmt.Printf("%s %s  %s/%s  %s\n", marker, n.ID, n.Section, n.Slug, n.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter notes by exact tag")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter notes by text search")
}
