package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordlang/internal/services/detect/domain"
)

// sourced tags a result with the input it came from
type sourced struct {
	Source        string `json:"source" yaml:"source"`
	domain.Result `yaml:",inline"`
}

var detectCmd = &cobra.Command{
	Use:   "detect [file...]",
	Short: "Guess the language of each input",
	Long: `Scores every input as one document and prints the best language, the
dominant script and the candidates that survive the margin.

With --text the arguments are ignored and each text is scored on the
worker pool instead.`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringArrayP("text", "t", nil, "text to score instead of files, repeatable")
	detectCmd.Flags().Bool("words", false, "include per-word results")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	texts, _ := cmd.Flags().GetStringArray("text")
	words, _ := cmd.Flags().GetBool("words")
	only := viper.GetStringSlice("only")
	ctx := cmd.Context()

	var out []sourced
	if len(texts) > 0 {
		res, err := svc.DetectBatch(ctx, domain.BatchInput{Texts: texts, Only: only})
		if err != nil {
			return err
		}
		for i, r := range res {
			out = append(out, sourced{Source: fmt.Sprintf("text[%d]", i), Result: r})
		}
	} else {
		for _, path := range inputs(args) {
			rd, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			res, err := svc.DetectSource(ctx, rd, domain.DetectInput{Only: only, Words: words})
			_ = rd.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out = append(out, sourced{Source: path, Result: res})
		}
	}

	return render(cmd.OutOrStdout(), viper.GetString("format"), out, func(w io.Writer) error {
		for _, r := range out {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Source, orDash(r.Best), orDash(r.Script), guesses(r.Langs)); err != nil {
				return err
			}
			for _, wr := range r.Words {
				if _, err := fmt.Fprintf(w, "\t%d-%d\t%s\t%s\n", wr.Start, wr.End, wr.Text, guesses(wr.Langs)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
