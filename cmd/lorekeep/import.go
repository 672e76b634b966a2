package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a store blob",
	Long: `Replace the whole store with a previously exported JSON blob. The
payload is validated before anything is touched; on failure the current
store stays as it was.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("Failed to read import file", err)
		}

		svc := openService()
		if err := svc.Import(context.Background(), data); err != nil {
			fatal("Failed to import store", err)
		}

		fmt.Printf("Imported %d notes\n", len(svc.Store().Items))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
