package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/rx2uitest/internal/model"
	"github.com/mj1618/rx2uitest/internal/translate"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use yaml or json)", s)
	}
}

// TranslateResult is the output of the `translate` command and tool.
type TranslateResult struct {
	Domain  string   `yaml:"domain"            json:"domain"`
	Type    string   `yaml:"type"              json:"type"`
	Locator string   `yaml:"locator,omitempty" json:"locator,omitempty"`
	Mapped  bool     `yaml:"mapped"            json:"mapped"`
	Lines   []string `yaml:"lines"             json:"lines"`
}

// NewTranslateResult translates rec and describes the outcome.
func NewTranslateResult(rec model.Record) TranslateResult {
	line := translate.TranslateRecord(rec)
	return TranslateResult{
		Domain:  rec.Domain,
		Type:    rec.Type,
		Locator: translate.RecordLocator(rec),
		Mapped:  line.Mapped,
		Lines:   line.Lines(),
	}
}

// ScaffoldResult lists the project files written by the `scaffold` command.
type ScaffoldResult struct {
	Dir   string   `yaml:"dir"   json:"dir"`
	Files []string `yaml:"files" json:"files"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return writeJSON(w, v, PrettyOutput)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	return writeJSON(os.Stdout, v, false)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	return writeJSON(os.Stdout, v, true)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	return writeYAML(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
