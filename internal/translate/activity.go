package translate

import (
	"strconv"
	"strings"

	"github.com/mj1618/rx2uitest/internal/model"
)

// activityTable maps test-case activity kinds to Xamarin.UITest calls.
// Script and method invocations never translate.
var activityTable = map[string]emitFunc{
	"click":         tapCall,
	"touch":         tapCall,
	"setvalue":      enterTextCall,
	"wait":          waitWithTimeoutCall,
	"executescript": nil,
	"invoke":        nil,
}

// waitWithTimeoutCall embeds the timeout attribute as milliseconds when it
// is a non-negative integer and otherwise leaves the framework default.
func waitWithTimeoutCall(attrs model.Attributes, locator string) string {
	ms, ok := parseTimeout(attrs.Get("timeout"))
	if !ok {
		return waitCall(attrs, locator)
	}
	return "app.WaitForElement(" + locator + ", timeout: TimeSpan.FromMilliseconds(" + strconv.Itoa(ms) + "));"
}

func parseTimeout(s string) (int, bool) {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || ms < 0 {
		return 0, false
	}
	return ms, true
}

// TranslateActivity translates one test-case activity. The element is taken
// from the target attribute.
func TranslateActivity(kind string, attrs model.Attributes) Line {
	return lookup(activityTable, model.DomainActivity, kind, attrs, nil, TargetLocator(attrs.Get("target")))
}
