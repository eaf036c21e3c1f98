package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-htlc/app"
)

var (
	versionCMD = &cobra.Command{
		Use:   "version",
		Short: "Print the coordinator version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.Version)
		},
	}
)
