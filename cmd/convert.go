package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/rx2uitest/internal/driver"
	"github.com/mj1618/rx2uitest/internal/logging"
	"github.com/mj1618/rx2uitest/internal/output"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file-or-directory>",
	Short: "Convert Ranorex files into Xamarin.UITest tests",
	Long: `Convert a single Ranorex file, or every supported file under a directory,
into Xamarin.UITest test classes written to the output directory.

Supported inputs:
  .rxtst   test suite; one test class per test case
  .rxrec   recording; one test class per recording
  .cs      code module; rewritten in place of the original name

Each run writes a conversion log (conversion_log.txt in the output directory
unless --log is given) and prints a summary of converted, skipped and failed
files. The command fails when any file failed to convert.

Examples:
  rx2uitest convert ./RanorexProject
  rx2uitest convert Login.rxrec --output ./out --platform ios
  rx2uitest convert ./RanorexProject --format json --no-scaffold`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "Output directory (default: XamarinTests)")
	convertCmd.Flags().String("log", "", "Conversion log file (default: <output>/conversion_log.txt)")
	convertCmd.Flags().String("namespace", "", "Namespace of generated test classes")
	convertCmd.Flags().String("base-fixture", "", "Base fixture class generated tests derive from")
	convertCmd.Flags().String("platform", "", "Target platform for the base fixture: android, ios")
	convertCmd.Flags().String("app-path", "", "Path to the .apk or .app under test")
	convertCmd.Flags().Bool("no-scaffold", false, "Do not write the base fixture and project file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	c := cfg
	overrideString(cmd, "output", &c.Output)
	overrideString(cmd, "log", &c.Log)
	overrideString(cmd, "namespace", &c.Namespace)
	overrideString(cmd, "base-fixture", &c.BaseFixture)
	overrideString(cmd, "platform", &c.Platform)
	overrideString(cmd, "app-path", &c.AppPath)
	if noScaffold, _ := cmd.Flags().GetBool("no-scaffold"); noScaffold {
		c.Scaffold = false
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logFile, err := logging.OpenFile(c.LogPath())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(level, os.Stderr, logFile)

	d := driver.New(driver.Options{
		OutputDir:  c.Output,
		Convert:    c.ConvertOptions(),
		Scaffold:   c.ScaffoldOptions(),
		NoScaffold: !c.Scaffold,
	}, logger)

	summary, err := d.Convert(args[0])
	if err != nil {
		return err
	}
	if err := output.Print(summary); err != nil {
		return err
	}
	if !summary.OK() {
		return fmt.Errorf("%d of %d files failed to convert", summary.Failed, summary.Total())
	}
	return nil
}
