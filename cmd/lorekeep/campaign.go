package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	campaignName   string
	campaignSystem string
)

// campaignCmd represents the campaign command
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Show or change campaign settings",
	Long:  `Without flags, prints the campaign name and game system. With --name or --system, updates them.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		ctx := context.Background()

		if cmd.Flags().Changed("name") {
			if err := svc.SetCampaignName(ctx, campaignName); err != nil {
				fatal("Failed to set campaign name", err)
			}
		}
		if cmd.Flags().Changed("system") {
			if err := svc.SetSystem(ctx, campaignSystem); err != nil {
				fatal("Failed to set system", err)
			}
		}

		settings := svc.Store().Settings
		fmt.Printf("%s (%s)\n", settings.CampaignName, settings.System)
	},
}

func init() {
	rootCmd.AddCommand(campaignCmd)
	campaignCmd.Flags().StringVar(&campaignName, "name", "", "Campaign name")
	campaignCmd.Flags().StringVar(&campaignSystem, "system", "", "Game system")
}
