package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lorekeep/lorekeep/pkg/adapters/markdown"
)

var (
	exportOut      string
	exportMarkdown string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the store",
	Long: `Export the whole store as a date-stamped JSON file, or as a tree of
Markdown files with --markdown <dir>.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		if exportMarkdown != "" {
			if err := markdown.ExportTree(svc.Store(), exportMarkdown); err != nil {
				fatal("Failed to export markdown tree", err)
			}
			fmt.Printf("Exported markdown tree to %s\n", exportMarkdown)
			return
		}

		data, filename, err := svc.Export()
		if err != nil {
			fatal("Failed to export store", err)
		}

		path := filename
		if exportOut != "" {
			path = exportOut
			if info, err := os.Stat(exportOut); err == nil && info.IsDir() {
				path = filepath.Join(exportOut, filename)
			}
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			fatal("Failed to write export file", err)
		}
		fmt.Printf("Exported to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file or directory (default: date-stamped name in cwd)")
	exportCmd.Flags().StringVar(&exportMarkdown, "markdown", "", "Export as a Markdown tree into the given directory")
}
