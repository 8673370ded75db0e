package convert

import (
	"path/filepath"
	"strings"
)

// Kind identifies a supported input file type.
type Kind string

const (
	KindSuite     Kind = "suite"
	KindRecording Kind = "recording"
	KindSource    Kind = "source"
)

// extensions maps lowercased file extensions to the kind they hold.
var extensions = map[string]Kind{
	".rxtst": KindSuite,
	".rxrec": KindRecording,
	".cs":    KindSource,
}

// Classify returns the kind of the file at path, judged by its extension.
func Classify(path string) (Kind, bool) {
	k, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return k, ok
}

// SupportedExtensions lists the recognised extensions.
func SupportedExtensions() []string {
	return []string{".rxtst", ".rxrec", ".cs"}
}
