package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mj1618/rx2uitest/internal/convert"
)

// ValidationError collects every problem found in a configuration.
type ValidationError struct {
	ErrorList []string
}

// Add appends one problem.
func (e *ValidationError) Add(format string, args ...interface{}) {
	e.ErrorList = append(e.ErrorList, fmt.Sprintf(format, args...))
}

func (e ValidationError) Error() string {
	plural := "error"
	if len(e.ErrorList) > 1 {
		plural = "errors"
	}
	return fmt.Sprintf("%d config validation %s: %s", len(e.ErrorList), plural, strings.Join(e.ErrorList, "; "))
}

// namespaceRe accepts dotted C# identifiers.
var namespaceRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration. The returned error is a ValidationError.
func (c Config) Validate() error {
	verr := ValidationError{}

	if strings.TrimSpace(c.Output) == "" {
		verr.Add("output directory must not be empty")
	}
	if !namespaceRe.MatchString(c.Namespace) {
		verr.Add("namespace %q is not a valid C# namespace", c.Namespace)
	}
	if !identRe.MatchString(c.BaseFixture) {
		verr.Add("base_fixture %q is not a valid C# class name", c.BaseFixture)
	}
	switch strings.ToLower(c.Platform) {
	case convert.PlatformAndroid, convert.PlatformIOS:
	default:
		verr.Add("platform %q is not supported (use android or ios)", c.Platform)
	}
	if !logLevels[strings.ToLower(c.LogLevel)] {
		verr.Add("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}

	if len(verr.ErrorList) > 0 {
		return verr
	}
	return nil
}
