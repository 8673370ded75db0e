package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/rx2uitest/internal/convert"
	"github.com/mj1618/rx2uitest/internal/driver"
	"github.com/mj1618/rx2uitest/internal/output"
	"github.com/mj1618/rx2uitest/internal/translate"
	"gopkg.in/yaml.v3"
)

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func call(t *testing.T, h handler, args map[string]interface{}) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("got %d content items, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return text.Text, res.IsError
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Driver: driver.Options{OutputDir: t.TempDir()}}, nil)
}

func TestNew_RegistersTools(t *testing.T) {
	s := newTestServer(t)
	want := []string{"build_locator", "translate", "convert_recording", "convert_suite", "convert_source", "convert_path", "scaffold"}
	got := s.Tools()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("tools = %v, want %v", got, want)
	}
}

func TestServe_UnsupportedTransport(t *testing.T) {
	s := New(Config{Transport: "carrier-pigeon"}, nil)
	if err := s.Serve(); err == nil || !strings.Contains(err.Error(), "unsupported transport") {
		t.Errorf("err = %v", err)
	}
}

func TestHandleBuildLocator(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"none", nil, translate.MatchAll},
		{"single id", map[string]interface{}{"id": "OK"}, `x => x.Marked("OK")`},
		{"adapters", map[string]interface{}{"adapters": []interface{}{
			map[string]interface{}{"title": "Sign in"},
			map[string]interface{}{},
			map[string]interface{}{"role": "button", "title": "Go"},
		}}, `x => x.Text("Sign in").Text("Go")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isErr := call(t, s.handleBuildLocator, tt.args)
			if isErr || got != tt.want {
				t.Errorf("got %q (error=%v), want %q", got, isErr, tt.want)
			}
		})
	}
}

func TestHandleTranslate(t *testing.T) {
	s := newTestServer(t)
	text, isErr := call(t, s.handleTranslate, map[string]interface{}{
		"domain": "activity",
		"type":   "setvalue",
		"attrs":  map[string]interface{}{"target": "User", "value": "jdoe"},
	})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	var res output.TranslateResult
	if err := yaml.Unmarshal([]byte(text), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Mapped || len(res.Lines) != 2 {
		t.Fatalf("result = %+v", res)
	}
	if res.Lines[1] != `app.EnterText(x => x.Marked("User"), "jdoe");` {
		t.Errorf("code = %q", res.Lines[1])
	}
}

func TestHandleTranslate_ActionPath(t *testing.T) {
	s := newTestServer(t)
	text, _ := call(t, s.handleTranslate, map[string]interface{}{
		"domain": "Action",
		"type":   "Click",
		"title":  "Sign in",
	})
	var res output.TranslateResult
	if err := yaml.Unmarshal([]byte(text), &res); err != nil {
		t.Fatal(err)
	}
	if res.Locator != `x => x.Text("Sign in")` {
		t.Errorf("locator = %q", res.Locator)
	}
	if len(res.Lines) != 2 || res.Lines[1] != `app.Tap(x => x.Text("Sign in"));` {
		t.Errorf("lines = %q", res.Lines)
	}
}

func TestHandleTranslate_Errors(t *testing.T) {
	s := newTestServer(t)
	if _, isErr := call(t, s.handleTranslate, map[string]interface{}{"domain": "report", "type": "x"}); !isErr {
		t.Error("unknown domain should be an error")
	}
	if _, isErr := call(t, s.handleTranslate, map[string]interface{}{"domain": "action"}); !isErr {
		t.Error("missing type should be an error")
	}
}

func TestHandleConvertRecording(t *testing.T) {
	s := newTestServer(t)
	text, isErr := call(t, s.handleConvertRecording, map[string]interface{}{
		"name":      "recordings/Login.rxrec",
		"content":   `<recording><action type="click"><path><adapter id="LoginButton"/></path></action></recording>`,
		"namespace": "App.Tests",
	})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	var file convert.GeneratedFile
	if err := yaml.Unmarshal([]byte(text), &file); err != nil {
		t.Fatal(err)
	}
	if file.Name != "LoginTests.cs" {
		t.Errorf("name = %q", file.Name)
	}
	if !strings.Contains(file.Content, "namespace App.Tests") {
		t.Errorf("namespace option ignored:\n%s", file.Content)
	}
}

func TestHandleConvertRecording_Malformed(t *testing.T) {
	s := newTestServer(t)
	text, isErr := call(t, s.handleConvertRecording, map[string]interface{}{"name": "Bad", "content": "<recording>"})
	if !isErr {
		t.Errorf("expected error, got %s", text)
	}
}

func TestHandleConvertSuite(t *testing.T) {
	s := newTestServer(t)
	args := map[string]interface{}{
		"name":    "Smoke.rxtst",
		"content": `<testsuite><test type="testcase" name="Login" path="Login.rxtc"/></testsuite>`,
		"steps": map[string]interface{}{
			"Login.rxtc": `<testcase><validation type="exists" elementid="Header"/></testcase>`,
		},
	}
	text, isErr := call(t, s.handleConvertSuite, args)
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	var files []convert.GeneratedFile
	if err := yaml.Unmarshal([]byte(text), &files); err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || !strings.Contains(files[0].Content, `Assert.That(app.Query(x => x.Marked("Header")).Any(), Is.True);`) {
		t.Errorf("files = %+v", files)
	}

	delete(args, "steps")
	if _, isErr := call(t, s.handleConvertSuite, args); !isErr {
		t.Error("missing step document should be an error")
	}
}

func TestHandleConvertSource(t *testing.T) {
	s := newTestServer(t)
	text, _ := call(t, s.handleConvertSource, map[string]interface{}{
		"name":    "src/Module.cs",
		"content": "using Ranorex;\n",
	})
	var file convert.GeneratedFile
	if err := yaml.Unmarshal([]byte(text), &file); err != nil {
		t.Fatal(err)
	}
	if file.Name != "Module.cs" || file.Content != "using Xamarin.UITest;\n" {
		t.Errorf("file = %+v", file)
	}
}

func TestHandleConvertPath(t *testing.T) {
	s := newTestServer(t)
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "Login.rxrec"), []byte(`<recording><action type="click"/></recording>`), 0o644); err != nil {
		t.Fatal(err)
	}

	text, isErr := call(t, s.handleConvertPath, map[string]interface{}{"path": in, "output": out})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	var summary driver.Summary
	if err := yaml.Unmarshal([]byte(text), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Converted != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(out, "LoginTests.cs")); err != nil {
		t.Error(err)
	}
	if len(s.drivers) != 1 {
		t.Errorf("drivers = %d, want 1", len(s.drivers))
	}

	call(t, s.handleConvertPath, map[string]interface{}{"path": in, "output": out})
	if len(s.drivers) != 1 {
		t.Errorf("driver not reused for the same output: %d", len(s.drivers))
	}

	if _, isErr := call(t, s.handleConvertPath, map[string]interface{}{}); !isErr {
		t.Error("missing path should be an error")
	}
}

func TestHandleScaffold(t *testing.T) {
	s := newTestServer(t)
	out := t.TempDir()
	text, isErr := call(t, s.handleScaffold, map[string]interface{}{"output": out, "platform": "ios"})
	if isErr {
		t.Fatalf("unexpected error: %s", text)
	}
	var res output.ScaffoldResult
	if err := yaml.Unmarshal([]byte(text), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 2 {
		t.Errorf("files = %v", res.Files)
	}
	data, err := os.ReadFile(filepath.Join(out, convert.DefaultBaseFixture+".cs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), ".iOS") {
		t.Errorf("platform option ignored:\n%s", data)
	}
}
