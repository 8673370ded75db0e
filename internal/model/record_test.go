package model

import "testing"

func TestAttributes_GetIsCaseInsensitive(t *testing.T) {
	attrs := Attributes{
		{Name: "elementId", Value: "Header"},
		{Name: "compare", Value: "Welcome"},
	}
	if got := attrs.Get("elementid"); got != "Header" {
		t.Errorf("Get(elementid) = %q, want %q", got, "Header")
	}
	if got := attrs.Get("COMPARE"); got != "Welcome" {
		t.Errorf("Get(COMPARE) = %q, want %q", got, "Welcome")
	}
}

func TestAttributes_GetMissingIsEmpty(t *testing.T) {
	var attrs Attributes
	if got := attrs.Get("target"); got != "" {
		t.Errorf("Get on nil attributes = %q, want empty", got)
	}
	if attrs.Has("target") {
		t.Error("Has(target) on nil attributes should be false")
	}
}

func TestAttributes_Without(t *testing.T) {
	attrs := Attributes{
		{Name: "type", Value: "click"},
		{Name: "target", Value: "Login"},
		{Name: "Value", Value: "x"},
	}
	got := attrs.Without("TYPE", "value")
	if len(got) != 1 || got[0].Name != "target" {
		t.Errorf("Without() = %+v, want only target", got)
	}
	// Original must be untouched
	if len(attrs) != 3 {
		t.Errorf("Without() mutated the receiver: %+v", attrs)
	}
}

func TestAttributesOf_SortsKeys(t *testing.T) {
	got := AttributesOf(map[string]string{"value": "a", "target": "b", "timeout": "c"})
	want := []string{"target", "timeout", "value"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("attr[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestRecord_Kind(t *testing.T) {
	r := Record{Type: " SetValue "}
	if got := r.Kind(); got != "setvalue" {
		t.Errorf("Kind() = %q, want %q", got, "setvalue")
	}
}
