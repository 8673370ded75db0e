package convert

import (
	"path/filepath"
	"regexp"
	"strings"
)

// repoClickRe matches a repository item clicked through its generated
// property, e.g. repo.LoginButton.Click().
var repoClickRe = regexp.MustCompile(`repo\.([A-Za-z0-9_]+)\.Click\(\)`)

// RewriteSource rewrites Ranorex code module text for Xamarin.UITest. Only
// the namespace import and the repository click idiom are rewritten; every
// other byte passes through. Rewriting converted text again is a no-op.
func RewriteSource(code string) string {
	code = strings.ReplaceAll(code, "using Ranorex;", "using Xamarin.UITest;")
	return repoClickRe.ReplaceAllString(code, `app.Tap(x => x.Marked("${1}"))`)
}

// ConvertSource rewrites a code module and keeps its file name.
func ConvertSource(name string, code []byte) GeneratedFile {
	return GeneratedFile{Name: filepath.Base(name), Content: RewriteSource(string(code))}
}
