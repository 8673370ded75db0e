package cmd

import (
	"github.com/mj1618/rx2uitest/internal/driver"
	"github.com/mj1618/rx2uitest/internal/output"
	"github.com/spf13/cobra"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write the base test fixture and project file",
	Long: `Write the shared base fixture, the NUnit test project file and the Pages/ and
Tests/ directories into the output directory without converting anything.`,
	Args: cobra.NoArgs,
	RunE: runScaffold,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().StringP("output", "o", "", "Output directory (default: XamarinTests)")
	scaffoldCmd.Flags().String("namespace", "", "Namespace of the base fixture")
	scaffoldCmd.Flags().String("base-fixture", "", "Base fixture class name")
	scaffoldCmd.Flags().String("platform", "", "Target platform: android, ios")
	scaffoldCmd.Flags().String("app-path", "", "Path to the .apk or .app under test")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	c := cfg
	overrideString(cmd, "output", &c.Output)
	overrideString(cmd, "namespace", &c.Namespace)
	overrideString(cmd, "base-fixture", &c.BaseFixture)
	overrideString(cmd, "platform", &c.Platform)
	overrideString(cmd, "app-path", &c.AppPath)
	if err := c.Validate(); err != nil {
		return err
	}

	files, err := driver.WriteScaffold(c.Output, c.ScaffoldOptions())
	if err != nil {
		return err
	}
	return output.Print(output.ScaffoldResult{Dir: c.Output, Files: files})
}
