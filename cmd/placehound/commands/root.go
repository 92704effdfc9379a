// Package commands implements the CLI commands for placehound.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/placehound/placehound/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "placehound",
	Short: "Business listing extractor for map search results",
	Long: `Placehound turns free-text map searches into structured business data.

Give it queries like "dentist Austin TX", and it drives a headless
browser through the search results, opens every listing, and exports
name, address, phone, website, rating and more as JSON, JSONL, CSV,
XLSX, or YAML.

Examples:
  # Scrape one query to stdout
  placehound run -q "dentist Austin TX"

  # Multiple queries, one spreadsheet per query
  placehound run -q "coffee Portland OR" -q "coffee Seattle WA" \
      -o ./exports --format xlsx

  # Everything, in every format
  placehound run -q "plumber Miami FL" -o ./exports --all-formats`,
	Version: version.String(),
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.placehound.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".placehound")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PLACEHOUND")
	viper.AutomaticEnv()

	// API keys for the optional summary step.
	_ = viper.BindEnv("api_key", "ANTHROPIC_API_KEY", "OPENAI_API_KEY")

	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
