package model

import (
	"sort"
	"strings"
)

// Record domains.
const (
	DomainAction     = "action"
	DomainActivity   = "activity"
	DomainValidation = "validation"
)

// Attribute is a raw key/value pair from a source element.
type Attribute struct {
	Name  string `yaml:"name"  json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Attributes keeps a source element's attributes in document order.
type Attributes []Attribute

// Get returns the value of the named attribute (case-insensitive), or ""
// when it is absent.
func (a Attributes) Get(name string) string {
	for _, attr := range a {
		if strings.EqualFold(attr.Name, name) {
			return attr.Value
		}
	}
	return ""
}

// Has reports whether the named attribute is present.
func (a Attributes) Has(name string) bool {
	for _, attr := range a {
		if strings.EqualFold(attr.Name, name) {
			return true
		}
	}
	return false
}

// Without returns a copy with the named attributes removed.
func (a Attributes) Without(names ...string) Attributes {
	out := make(Attributes, 0, len(a))
next:
	for _, attr := range a {
		for _, n := range names {
			if strings.EqualFold(attr.Name, n) {
				continue next
			}
		}
		out = append(out, attr)
	}
	return out
}

// AttributesOf builds Attributes from a plain map. Keys are sorted so the
// result is deterministic.
func AttributesOf(m map[string]string) Attributes {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(Attributes, 0, len(keys))
	for _, k := range keys {
		out = append(out, Attribute{Name: k, Value: m[k]})
	}
	return out
}

// Record is one recorded action, test activity or validation rule.
type Record struct {
	Domain string       `yaml:"domain"         json:"domain"`
	Type   string       `yaml:"type"           json:"type"`
	Attrs  Attributes   `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Path   *ElementPath `yaml:"path,omitempty"  json:"path,omitempty"`
}

// Kind returns the lowercased record type used for table lookups.
func (r Record) Kind() string {
	return strings.ToLower(strings.TrimSpace(r.Type))
}

// TestCase names one test unit and the step document that defines it.
type TestCase struct {
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"path" json:"path"`
}
