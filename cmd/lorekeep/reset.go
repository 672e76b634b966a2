package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset to the demo dataset",
	Long:  `Discard every note and reseed the demo campaign. Requires --force.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !resetForce {
			fmt.Fprintln(os.Stderr, "Refusing to reset without --force")
			os.Exit(1)
		}

		svc := openService()
		if err := svc.Reset(context.Background()); err != nil {
			fatal("Failed to reset store", err)
		}
		fmt.Println("Store reset to demo data")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm the reset")
}
