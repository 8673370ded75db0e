package driver

import "github.com/mj1618/rx2uitest/internal/convert"

// Status is the outcome of converting one input file.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// FileResult records what happened to one input file.
type FileResult struct {
	Path    string       `yaml:"path"              json:"path"`
	Kind    convert.Kind `yaml:"kind,omitempty"    json:"kind,omitempty"`
	Status  Status       `yaml:"status"            json:"status"`
	Reason  string       `yaml:"reason,omitempty"  json:"reason,omitempty"`
	Outputs []string     `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Err     error        `yaml:"-"                 json:"-"`
}

// Summary aggregates the results of a conversion run.
type Summary struct {
	Converted int          `yaml:"converted" json:"converted"`
	Skipped   int          `yaml:"skipped"   json:"skipped"`
	Failed    int          `yaml:"failed"    json:"failed"`
	Results   []FileResult `yaml:"results"   json:"results"`
}

// Total is the number of files attempted.
func (s Summary) Total() int {
	return s.Converted + s.Skipped + s.Failed
}

// OK reports whether no file failed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// With returns s with r appended and the matching counter incremented.
func (s Summary) With(r FileResult) Summary {
	switch r.Status {
	case StatusConverted:
		s.Converted++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
	return s
}
