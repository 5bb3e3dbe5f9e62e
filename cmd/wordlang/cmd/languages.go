package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordlang/internal/services/detect/domain"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the candidate languages at the chosen granularity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		ls, err := svc.Languages(domain.Granularity(viper.GetString("granularity")))
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), viper.GetString("format"), ls, func(w io.Writer) error {
			for _, l := range ls {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", l.Code, l.Name); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
