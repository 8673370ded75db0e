package translate

import (
	"strings"

	"github.com/mj1618/rx2uitest/internal/model"
)

// MatchAll is the query that matches every element on screen.
const MatchAll = "x => x.All()"

// BuildLocator turns an element path into an app query lambda. Each adapter
// contributes at most one condition, chosen by priority id > title > role;
// adapters with none of them are skipped. A nil or empty path, or one where
// no adapter contributes, yields MatchAll.
func BuildLocator(path *model.ElementPath) string {
	if path == nil {
		return MatchAll
	}
	conditions := make([]string, 0, len(path.Adapters))
	for _, a := range path.Adapters {
		switch {
		case a.ID != "":
			conditions = append(conditions, "Marked("+quote(a.ID)+")")
		case a.Title != "":
			conditions = append(conditions, "Text("+quote(a.Title)+")")
		case a.Role != "":
			conditions = append(conditions, "Class("+quote(a.Role)+")")
		}
	}
	if len(conditions) == 0 {
		return MatchAll
	}
	return "x => x." + strings.Join(conditions, ".")
}

// TargetLocator builds the locator for a step that names its element by id.
func TargetLocator(id string) string {
	return BuildLocator(model.PathOf(id))
}

// RecordLocator returns the query a record's generated call targets: the
// element path for actions, the target for activities and the element id
// for validations.
func RecordLocator(rec model.Record) string {
	switch rec.Domain {
	case model.DomainAction:
		return BuildLocator(rec.Path)
	case model.DomainActivity:
		return TargetLocator(rec.Attrs.Get("target"))
	case model.DomainValidation:
		return TargetLocator(rec.Attrs.Get("elementid"))
	default:
		return ""
	}
}
