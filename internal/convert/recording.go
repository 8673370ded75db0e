package convert

import (
	"github.com/mj1618/rx2uitest/internal/model"
	"github.com/mj1618/rx2uitest/internal/translate"
)

// ConvertRecording turns a recording document into one test class named
// after the recording. Actions are emitted in document order.
func ConvertRecording(name string, data []byte, opts Options) (GeneratedFile, error) {
	actions, err := model.ParseRecording(data)
	if err != nil {
		return GeneratedFile{}, &MalformedInputError{Kind: KindRecording, Name: name, Err: err}
	}
	lines := make([]translate.Line, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, translate.TranslateRecord(a))
	}
	file, class := testFileName(name)
	return GeneratedFile{Name: file, Content: renderTestClass(class, lines, opts)}, nil
}
