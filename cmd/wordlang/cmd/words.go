package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordlang/internal/services/detect/domain"
)

// sourcedWord tags a word with the input its range refers to
type sourcedWord struct {
	Source            string `json:"source" yaml:"source"`
	domain.WordResult `yaml:",inline"`
}

var wordsCmd = &cobra.Command{
	Use:   "words [file...]",
	Short: "Split inputs into words with their candidate languages",
	Long: `Prints one line per word: its byte range in the input, the folded word
and every candidate language within the margin. Ranges are relative to each
input; with several inputs every line starts with the input's path.`,
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	in := domain.DetectInput{Only: viper.GetStringSlice("only"), Words: true}

	paths := inputs(args)
	ws := []sourcedWord{}
	for _, path := range paths {
		rd, err := openInput(cmd, path)
		if err != nil {
			return err
		}
		res, err := svc.DetectSource(cmd.Context(), rd, in)
		_ = rd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, wr := range res.Words {
			ws = append(ws, sourcedWord{Source: path, WordResult: wr})
		}
	}

	return render(cmd.OutOrStdout(), viper.GetString("format"), ws, func(w io.Writer) error {
		for _, wr := range ws {
			if len(paths) > 1 {
				if _, err := fmt.Fprintf(w, "%s\t", wr.Source); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d-%d\t%s\t%s\n", wr.Start, wr.End, wr.Text, guesses(wr.Langs)); err != nil {
				return err
			}
		}
		return nil
	})
}
