package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sergeydigl3/do-runner-firewall/internal/firewall"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Revoke the runner IP from the configured ports",
	Long:  `Resolve the runner's public IP and remove the matching inbound rules from the firewall.`,
	Args:  cobra.NoArgs,
	RunE:  runMode(firewall.ModeRemove),
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
