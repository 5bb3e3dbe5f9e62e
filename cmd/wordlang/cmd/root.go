// Package cmd holds the wordlang command tree
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordlang/internal/adapters/ingest/reader"
	"wordlang/internal/platform/logger"
	"wordlang/internal/services/detect/domain"
	"wordlang/internal/services/detect/service"
)

// envPrefix shares CORE_DETECT_* keys with the API
const envPrefix = "CORE_DETECT"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordlang",
	Short: "Split text into words and guess their languages",
	Long: `wordlang splits Unicode text into words by script and alphabet, then
reports which languages each word and the whole document could be written in.

Inputs are files, gzip files ending in .gz, or standard input when no file
or "-" is given.

Examples:
  wordlang detect notes.txt
  echo "Привіт, як справи?" | wordlang words --format json
  wordlang languages --granularity variant`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.Init(logger.Options{
			Level:   viper.GetString("log_level"),
			Format:  "console",
			Service: "wordlang",
			Writer:  cmd.ErrOrStderr(),
		})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for tests
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	def := service.DefaultOptions()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	pf.StringP("granularity", "g", string(def.Granularity), "candidate set: language or variant")
	pf.Uint32P("margin", "m", def.Margin, "percent of the top count a language must exceed")
	pf.StringSlice("only", nil, "report only these BCP-47 codes")
	pf.Int("chunk-size", def.ChunkSize, "bytes read from an input at a time")
	pf.Int("workers", def.Workers, "texts scored in parallel")
	pf.StringP("format", "f", "text", "output format: text, json or yaml")

	for _, name := range []string{"log-level", "granularity", "margin", "only", "chunk-size", "workers", "format"} {
		_ = viper.BindPFlag(strings.ReplaceAll(name, "-", "_"), pf.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			logger.Get().Warn().Err(err).Str("file", cfgFile).Msg("config file not loaded")
		}
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newService builds the detector from flags, env and config file
func newService() (*service.Service, error) {
	return service.New(service.Options{
		Granularity: domain.Granularity(strings.ToLower(viper.GetString("granularity"))),
		Margin:      viper.GetUint32("margin"),
		Workers:     viper.GetInt("workers"),
		ChunkSize:   viper.GetInt("chunk_size"),
	})
}

// inputs returns the paths to read, standard input when none are given
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// openInput opens path, reading the command's stdin for "-"
func openInput(cmd *cobra.Command, path string) (*reader.Reader, error) {
	if path == "-" {
		return reader.New(cmd.InOrStdin(), viper.GetInt("chunk_size")), nil
	}
	return reader.Open(path, viper.GetInt("chunk_size"))
}
