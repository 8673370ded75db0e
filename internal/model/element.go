package model

import "strings"

// Adapter is one identifying condition in a recorded element path.
type Adapter struct {
	ID    string `yaml:"id,omitempty"    json:"id,omitempty"`
	Role  string `yaml:"role,omitempty"  json:"role,omitempty"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
}

// IsEmpty reports whether the adapter carries none of id, title or role.
func (a Adapter) IsEmpty() bool {
	return a.ID == "" && a.Title == "" && a.Role == ""
}

// ElementPath is the chain of adapters locating one UI element, outermost first.
type ElementPath struct {
	Adapters []Adapter `yaml:"adapters" json:"adapters"`
}

// String renders the path as a compact breadcrumb, e.g.
// "[id=LoginForm, title=Sign in]". Empty adapters are kept as "-" so the
// position of every adapter stays visible.
func (p *ElementPath) String() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, len(p.Adapters))
	for _, a := range p.Adapters {
		var fields []string
		if a.ID != "" {
			fields = append(fields, "id="+a.ID)
		}
		if a.Title != "" {
			fields = append(fields, "title="+a.Title)
		}
		if a.Role != "" {
			fields = append(fields, "role="+a.Role)
		}
		if len(fields) == 0 {
			parts = append(parts, "-")
			continue
		}
		parts = append(parts, strings.Join(fields, " "))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PathOf builds a single-adapter path identified by id. An empty id yields
// an empty path.
func PathOf(id string) *ElementPath {
	if id == "" {
		return &ElementPath{}
	}
	return &ElementPath{Adapters: []Adapter{{ID: id}}}
}
