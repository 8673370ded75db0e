package translate

import (
	"strings"

	"github.com/mj1618/rx2uitest/internal/model"
)

// actionTable maps recorded action kinds to Xamarin.UITest calls.
var actionTable = map[string]emitFunc{
	"click":     tapCall,
	"touch":     tapCall,
	"setvalue":  enterTextCall,
	"movemouse": nil,
	"keyboard":  keyboardCall,
	"wait":      waitCall,
	"validate":  existsAssertion(true),
}

func tapCall(_ model.Attributes, locator string) string {
	return "app.Tap(" + locator + ");"
}

func enterTextCall(attrs model.Attributes, locator string) string {
	return "app.EnterText(" + locator + ", " + quote(attrs.Get("value")) + ");"
}

func keyboardCall(attrs model.Attributes, _ string) string {
	value := attrs.Get("value")
	switch {
	case strings.Contains(value, "Return"):
		return "app.PressEnter();"
	case strings.Contains(value, "Tab"):
		return "app.DismissKeyboard();"
	default:
		return "app.EnterText(" + quote(value) + ");"
	}
}

func waitCall(_ model.Attributes, locator string) string {
	return "app.WaitForElement(" + locator + ");"
}

// TranslateAction translates one recorded action. locator is the query
// built from the action's element path.
func TranslateAction(kind string, attrs model.Attributes, locator string) Line {
	return action(kind, attrs, nil, locator)
}

func action(kind string, attrs model.Attributes, path *model.ElementPath, locator string) Line {
	return lookup(actionTable, model.DomainAction, kind, attrs, path, locator)
}
