package translate

import "github.com/mj1618/rx2uitest/internal/model"

// validationTable maps validation rule kinds to NUnit assertions over app queries.
var validationTable = map[string]emitFunc{
	"exists":    existsAssertion(true),
	"notexists": existsAssertion(false),
	"equals":    textAssertion("Is.EqualTo"),
	"contains":  textAssertion("Does.Contain"),
	"enabled":   enabledAssertion(true),
	"disabled":  enabledAssertion(false),
}

func existsAssertion(want bool) emitFunc {
	return func(_ model.Attributes, locator string) string {
		return "Assert.That(app.Query(" + locator + ").Any(), " + isBool(want) + ");"
	}
}

func textAssertion(constraint string) emitFunc {
	return func(attrs model.Attributes, locator string) string {
		return "Assert.That(app.Query(" + locator + ").First().Text, " + constraint + "(" + quote(attrs.Get("compare")) + "));"
	}
}

func enabledAssertion(want bool) emitFunc {
	return func(_ model.Attributes, locator string) string {
		return "Assert.That(app.Query(" + locator + ").First().Enabled, " + isBool(want) + ");"
	}
}

func isBool(b bool) string {
	if b {
		return "Is.True"
	}
	return "Is.False"
}

// TranslateValidation translates one validation rule comparing the element
// identified by elementID against compareValue.
func TranslateValidation(kind, compareValue, elementID string) Line {
	return validation(kind, model.Attributes{
		{Name: "compare", Value: compareValue},
		{Name: "elementId", Value: elementID},
	})
}

func validation(kind string, attrs model.Attributes) Line {
	return lookup(validationTable, model.DomainValidation, kind, attrs, nil, TargetLocator(attrs.Get("elementid")))
}
