package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/rx2uitest/internal/model"
	"github.com/mj1618/rx2uitest/internal/output"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a single action, activity or validation",
	Long: `Translate one Ranorex record into the lines a converted test would contain:
a comment tracing the original, followed by the Xamarin.UITest call or the
manual-conversion marker.

Actions locate their element through --id, --title and --role (one adapter).
Activities use the target attribute and validations the elementid attribute.

Examples:
  rx2uitest translate --domain action --type click --id LoginButton
  rx2uitest translate --domain activity --type wait --attr target=Spinner,timeout=1500
  rx2uitest translate --domain validation --type equals --attr compare=Welcome,elementid=Header`,
	Args: cobra.NoArgs,
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().String("domain", "", "Record domain: action, activity, validation")
	translateCmd.Flags().String("type", "", "Record type, e.g. click, setvalue, equals")
	translateCmd.Flags().StringToString("attr", nil, "Record attributes as key=value pairs")
	translateCmd.Flags().String("id", "", "Element id (actions)")
	translateCmd.Flags().String("title", "", "Element title (actions)")
	translateCmd.Flags().String("role", "", "Element role (actions)")
	translateCmd.MarkFlagRequired("domain")
	translateCmd.MarkFlagRequired("type")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	domain, _ := cmd.Flags().GetString("domain")
	kind, _ := cmd.Flags().GetString("type")
	attrs, _ := cmd.Flags().GetStringToString("attr")

	rec := model.Record{
		Domain: strings.ToLower(domain),
		Type:   kind,
		Attrs:  model.AttributesOf(attrs),
	}
	switch rec.Domain {
	case model.DomainAction:
		id, _ := cmd.Flags().GetString("id")
		title, _ := cmd.Flags().GetString("title")
		role, _ := cmd.Flags().GetString("role")
		if a := (model.Adapter{ID: id, Title: title, Role: role}); !a.IsEmpty() {
			rec.Path = &model.ElementPath{Adapters: []model.Adapter{a}}
		}
	case model.DomainActivity, model.DomainValidation:
	default:
		return fmt.Errorf("unknown domain %q (use action, activity or validation)", domain)
	}

	return output.Print(output.NewTranslateResult(rec))
}
