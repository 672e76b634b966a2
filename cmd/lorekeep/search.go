package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [pattern]",
	Short: "Find notes by address glob",
	Long: `Match notes against a section/slug glob pattern, e.g. "npcs/*" or
"*/town-*". Patterns follow doublestar syntax.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		notes, err := svc.Match(args[0])
		if err != nil {
			fatal("Invalid pattern", err)
		}

		for _, n := range notes {
			fmt.Printf("%s  %s/%s  %s\n", n.ID, n.Section, n.Slug, n.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
