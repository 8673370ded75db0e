package convert

import (
	"fmt"
	"strings"

	"github.com/mj1618/rx2uitest/internal/model"
	"github.com/mj1618/rx2uitest/internal/translate"
)

// StepLoader returns the raw step-definition document a test case points to.
// path is the test case's path attribute, unresolved.
type StepLoader func(path string) ([]byte, error)

// ConvertSuite produces one test class per test case referenced by the
// suite, in suite order. A test case without a path gets an empty method.
func ConvertSuite(name string, data []byte, load StepLoader, opts Options) ([]GeneratedFile, error) {
	cases, err := model.ParseSuite(data)
	if err != nil {
		return nil, &MalformedInputError{Kind: KindSuite, Name: name, Err: err}
	}
	files := make([]GeneratedFile, 0, len(cases))
	for _, tc := range cases {
		lines, err := testCaseLines(tc, load)
		if err != nil {
			return nil, err
		}
		file, class := testFileName(tc.Name)
		files = append(files, GeneratedFile{Name: file, Content: renderTestClass(class, lines, opts)})
	}
	return files, nil
}

func testCaseLines(tc model.TestCase, load StepLoader) ([]translate.Line, error) {
	if strings.TrimSpace(tc.Path) == "" {
		return nil, nil
	}
	if load == nil {
		return nil, fmt.Errorf("test case %q: no step loader", tc.Name)
	}
	data, err := load(tc.Path)
	if err != nil {
		return nil, fmt.Errorf("test case %q: load %s: %w", tc.Name, tc.Path, err)
	}
	records, err := model.ParseSteps(data)
	if err != nil {
		return nil, &MalformedInputError{Kind: KindSuite, Name: tc.Path, Err: err}
	}
	lines := make([]translate.Line, 0, len(records))
	for _, r := range records {
		lines = append(lines, translate.TranslateRecord(r))
	}
	return lines, nil
}
