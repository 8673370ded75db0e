package translate

import (
	"strings"
	"testing"

	"github.com/mj1618/rx2uitest/internal/model"
)

func TestBuildLocator(t *testing.T) {
	tests := []struct {
		name string
		path *model.ElementPath
		want string
	}{
		{"nil path", nil, MatchAll},
		{"no adapters", &model.ElementPath{}, MatchAll},
		{"only empty adapters", &model.ElementPath{Adapters: []model.Adapter{{}, {}}}, MatchAll},
		{"id", &model.ElementPath{Adapters: []model.Adapter{{ID: "LoginButton"}}}, `x => x.Marked("LoginButton")`},
		{"title", &model.ElementPath{Adapters: []model.Adapter{{Title: "Sign in"}}}, `x => x.Text("Sign in")`},
		{"role", &model.ElementPath{Adapters: []model.Adapter{{Role: "button"}}}, `x => x.Class("button")`},
		{
			"id wins over title and role",
			&model.ElementPath{Adapters: []model.Adapter{{ID: "ok", Title: "OK", Role: "button"}}},
			`x => x.Marked("ok")`,
		},
		{
			"title wins over role",
			&model.ElementPath{Adapters: []model.Adapter{{Title: "OK", Role: "button"}}},
			`x => x.Text("OK")`,
		},
		{
			"chain in path order, empty adapter skipped",
			&model.ElementPath{Adapters: []model.Adapter{{Role: "form"}, {}, {ID: "user"}, {Title: "Name"}}},
			`x => x.Class("form").Marked("user").Text("Name")`,
		},
		{
			"quotes are escaped",
			&model.ElementPath{Adapters: []model.Adapter{{Title: `Say "hi"`}}},
			`x => x.Text("Say \"hi\"")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildLocator(tt.path); got != tt.want {
				t.Errorf("BuildLocator() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildLocator_IDNeverFallsBackToTitleOrRole(t *testing.T) {
	paths := []*model.ElementPath{
		{Adapters: []model.Adapter{{ID: "a", Title: "t"}}},
		{Adapters: []model.Adapter{{ID: "a", Role: "r"}}},
		{Adapters: []model.Adapter{{ID: "a", Title: "t", Role: "r"}}},
	}
	for _, p := range paths {
		got := BuildLocator(p)
		if !strings.Contains(got, `Marked("a")`) {
			t.Errorf("BuildLocator(%v) = %q, should select on id", p, got)
		}
		if strings.Contains(got, "Text(") || strings.Contains(got, "Class(") {
			t.Errorf("BuildLocator(%v) = %q, should ignore title and role", p, got)
		}
	}
}

func TestBuildLocator_MatchAllOnlyForEmptyPaths(t *testing.T) {
	nonEmpty := []model.Adapter{{ID: "a"}, {Title: "b"}, {Role: "c"}}
	for _, a := range nonEmpty {
		p := &model.ElementPath{Adapters: []model.Adapter{{}, a}}
		if got := BuildLocator(p); got == MatchAll {
			t.Errorf("path with %+v should not produce MatchAll", a)
		}
	}
}

func TestTargetLocator(t *testing.T) {
	if got := TargetLocator("Header"); got != `x => x.Marked("Header")` {
		t.Errorf("TargetLocator(Header) = %q", got)
	}
	if got := TargetLocator(""); got != MatchAll {
		t.Errorf("TargetLocator(\"\") = %q, want %q", got, MatchAll)
	}
}

func TestRecordLocator(t *testing.T) {
	tests := []struct {
		name string
		rec  model.Record
		want string
	}{
		{"action path", model.Record{Domain: model.DomainAction, Path: &model.ElementPath{Adapters: []model.Adapter{{Title: "OK"}}}}, `x => x.Text("OK")`},
		{"action without path", model.Record{Domain: model.DomainAction}, MatchAll},
		{"activity target", model.Record{Domain: model.DomainActivity, Attrs: model.Attributes{{Name: "Target", Value: "User"}}}, `x => x.Marked("User")`},
		{"validation element", model.Record{Domain: model.DomainValidation, Attrs: model.Attributes{{Name: "elementId", Value: "Header"}}}, `x => x.Marked("Header")`},
		{"unknown domain", model.Record{Domain: "report"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordLocator(tt.rec); got != tt.want {
				t.Errorf("RecordLocator() = %q, want %q", got, tt.want)
			}
		})
	}
}
