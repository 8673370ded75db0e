package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/rx2uitest/internal/config"
	"github.com/mj1618/rx2uitest/internal/output"
	"github.com/mj1618/rx2uitest/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rx2uitest",
	Short: "Convert Ranorex test artifacts into Xamarin.UITest tests",
	Long: `Convert Ranorex test suites (.rxtst), recordings (.rxrec) and code modules (.cs)
into Xamarin.UITest / NUnit C# test classes.

Settings are layered: built-in defaults, then the YAML config file (--config, or
rx2uitest.yaml in the working directory), then RX2UITEST_* environment variables
(a .env file is honoured), then command-line flags.`,
}

// cfg is the configuration loaded before every command runs.
var cfg = config.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: "+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		path, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			loaded.LogLevel = level
		}
		cfg = loaded
		return nil
	}
}

// overrideString copies a changed string flag into dst.
func overrideString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}
