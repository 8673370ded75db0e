package translate

import (
	"strings"

	"github.com/mj1618/rx2uitest/internal/model"
)

// ManualConversionMarker follows the original-construct comment of every
// action, activity or validation that has no Xamarin.UITest mapping.
const ManualConversionMarker = "// TODO: No direct Xamarin.UITest equivalent - Needs manual conversion"

// Line is the translation of one source record: a comment tracing the
// original construct, and the generated call when a mapping exists.
type Line struct {
	Comment string `yaml:"comment"        json:"comment"`
	Code    string `yaml:"code,omitempty" json:"code,omitempty"`
	Mapped  bool   `yaml:"mapped"         json:"mapped"`
}

// Lines returns the output lines for l: the comment, then either the
// generated code or the manual-conversion marker.
func (l Line) Lines() []string {
	if !l.Mapped {
		return []string{l.Comment, ManualConversionMarker}
	}
	return []string{l.Comment, l.Code}
}

// emitFunc renders the C# statement for one record. A nil emitFunc in a
// table marks a kind that is known but has no equivalent.
type emitFunc func(attrs model.Attributes, locator string) string

// lookup translates kind through table. Unknown kinds and nil entries both
// produce an unmapped line.
func lookup(table map[string]emitFunc, domain, kind string, attrs model.Attributes, path *model.ElementPath, locator string) Line {
	line := Line{Comment: originalComment(domain, kind, attrs, path)}
	emit, ok := table[strings.ToLower(strings.TrimSpace(kind))]
	if !ok || emit == nil {
		return line
	}
	line.Code = emit(attrs, locator)
	line.Mapped = true
	return line
}

// originalComment renders the untranslated record, e.g.
//
//	// Original action: type="click" varname="btn" path="[id=LoginButton]"
func originalComment(domain, kind string, attrs model.Attributes, path *model.ElementPath) string {
	var b strings.Builder
	b.WriteString("// Original ")
	b.WriteString(domain)
	b.WriteString(": type=")
	b.WriteString(commentValue(kind))
	for _, a := range attrs {
		if strings.EqualFold(a.Name, "type") {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=")
		b.WriteString(commentValue(a.Value))
	}
	if path != nil {
		b.WriteString(" path=")
		b.WriteString(commentValue(path.String()))
	}
	return b.String()
}

func commentValue(s string) string {
	return `"` + commentSafe(s) + `"`
}

// TranslateRecord translates any parsed record by dispatching on its domain.
func TranslateRecord(rec model.Record) Line {
	switch rec.Domain {
	case model.DomainAction:
		return action(rec.Type, rec.Attrs, rec.Path, RecordLocator(rec))
	case model.DomainActivity:
		return TranslateActivity(rec.Type, rec.Attrs)
	case model.DomainValidation:
		return validation(rec.Type, rec.Attrs)
	default:
		return Line{Comment: originalComment(rec.Domain, rec.Type, rec.Attrs, rec.Path)}
	}
}
