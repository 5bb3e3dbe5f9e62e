package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordlang/internal/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Info()
		return render(cmd.OutOrStdout(), viper.GetString("format"), info, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", info.Service, info.Version, info.Commit, info.Date)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
