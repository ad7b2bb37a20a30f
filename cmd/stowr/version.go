// Version command for the stowr CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/pkg/stowr"
)

const modulePath = "github.com/stowr-project/stowr"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stowr version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "stowr v%s\nmodule: %s\n", stowr.Version, modulePath)
		return nil
	},
}
