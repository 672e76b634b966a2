package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show [ref]",
	Short: "Show a note",
	Long:  `Show a note by id, section/slug address, or glob pattern. Prints the content plus its link neighborhood; --json emits the full record.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		note := resolveNote(svc, args[0])

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("# %s  [%s/%s]\n", note.Title, note.Section, note.Slug)
		if len(note.Tags) > 0 {
			fmt.Printf("tags: %v\n", note.Tags)
		}
		fmt.Println()
		fmt.Println(note.Content)

		if out := svc.Outgoing(note.ID); len(out) > 0 {
			fmt.Println("\nLinks:")
			for _, title := range out {
				fmt.Printf("  -> %s\n", title)
			}
		}
		if back := svc.Backlinks(note.ID); len(back) > 0 {
			fmt.Println("\nLinked from:")
			for _, b := range back {
				fmt.Printf("  <- %s (%s/%s)\n", b.Title, b.Section, b.Slug)
			}
		}
		if mentions := svc.Mentions(note.ID); len(mentions) > 0 {
			fmt.Println("\nUnlinked mentions:")
			for _, m := range mentions {
				fmt.Printf("  ~ %s (%s/%s)\n", m.Title, m.Section, m.Slug)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
