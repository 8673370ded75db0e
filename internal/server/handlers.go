package server

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/rx2uitest/internal/convert"
	"github.com/mj1618/rx2uitest/internal/driver"
	"github.com/mj1618/rx2uitest/internal/model"
	"github.com/mj1618/rx2uitest/internal/output"
	"github.com/mj1618/rx2uitest/internal/translate"
	"gopkg.in/yaml.v3"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) convertOptions(params map[string]interface{}) convert.Options {
	opts := s.cfg.Driver.Convert
	opts.Namespace = stringParam(params, "namespace", opts.Namespace)
	opts.BaseFixture = stringParam(params, "base_fixture", opts.BaseFixture)
	return opts
}

func (s *Server) handleBuildLocator(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := pathParam(request.GetArguments())
	return mcp.NewToolResultText(translate.BuildLocator(path)), nil
}

func (s *Server) handleTranslate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	domain := strings.ToLower(stringParam(params, "domain", ""))
	kind := stringParam(params, "type", "")

	switch domain {
	case model.DomainAction, model.DomainActivity, model.DomainValidation:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown domain %q (use action, activity or validation)", domain)), nil
	}
	if kind == "" {
		return mcp.NewToolResultError("type is required"), nil
	}

	rec := model.Record{
		Domain: domain,
		Type:   kind,
		Attrs:  model.AttributesOf(stringMapParam(params, "attrs")),
	}
	if domain == model.DomainAction {
		rec.Path = pathParam(params)
	}
	return mcp.NewToolResultText(toText(output.NewTranslateResult(rec))), nil
}

func (s *Server) handleConvertRecording(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := convert.BaseName(stringParam(params, "name", ""))
	content := stringParam(params, "content", "")

	file, err := convert.ConvertRecording(name, []byte(content), s.convertOptions(params))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(file)), nil
}

func (s *Server) handleConvertSuite(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	content := stringParam(params, "content", "")
	steps := stringMapParam(params, "steps")

	load := func(path string) ([]byte, error) {
		doc, ok := steps[path]
		if !ok {
			return nil, fmt.Errorf("step document %s: %w", path, os.ErrNotExist)
		}
		return []byte(doc), nil
	}
	files, err := convert.ConvertSuite(name, []byte(content), load, s.convertOptions(params))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(files)), nil
}

func (s *Server) handleConvertSource(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	content := stringParam(params, "content", "")
	return mcp.NewToolResultText(toText(convert.ConvertSource(name, []byte(content)))), nil
}

func (s *Server) handleConvertPath(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	summary, err := s.driverFor(stringParam(params, "output", "")).Convert(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !summary.OK() {
		return mcp.NewToolResultError(toText(summary)), nil
	}
	return mcp.NewToolResultText(toText(summary)), nil
}

func (s *Server) handleScaffold(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	dir := stringParam(params, "output", s.cfg.Driver.OutputDir)
	opts := s.cfg.Driver.Scaffold
	opts.Platform = stringParam(params, "platform", opts.Platform)
	opts.AppPath = stringParam(params, "app_path", opts.AppPath)

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	files, err := driver.WriteScaffold(dir, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(output.ScaffoldResult{Dir: dir, Files: files})), nil
}
