package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sergeydigl3/do-runner-firewall/internal/firewall"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Allow the runner IP on the configured ports",
	Long:  `Resolve the runner's public IP and add one inbound rule per port to the firewall.`,
	Args:  cobra.NoArgs,
	RunE:  runMode(firewall.ModeAdd),
}

func init() {
	rootCmd.AddCommand(addCmd)
}
