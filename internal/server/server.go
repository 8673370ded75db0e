package server

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/rx2uitest/internal/driver"
	"github.com/mj1618/rx2uitest/internal/logging"
	"github.com/mj1618/rx2uitest/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	// Driver is the template for conversions that write to disk. Its
	// OutputDir is the default when a tool call names none.
	Driver driver.Options
}

// Server exposes the converter as MCP tools.
type Server struct {
	cfg   Config
	log   *slog.Logger
	mcp   *mcpserver.MCPServer
	tools []string

	// driverMu serializes disk conversions; drivers are kept per output
	// directory so their step caches survive between calls.
	driverMu sync.Mutex
	drivers  map[string]*driver.Driver
}

// New creates and configures an MCP server with all converter tools.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		cfg:     cfg,
		log:     logger,
		drivers: make(map[string]*driver.Driver),
	}
	s.mcp = mcpserver.NewMCPServer("rx2uitest", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "", "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		s.log.Info("serving MCP over streamable HTTP", "port", s.cfg.Port)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

// Tools returns the registered tool names in registration order.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

func (s *Server) addTool(tool mcp.Tool, handler mcpserver.ToolHandlerFunc) {
	s.mcp.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}

// driverFor returns the cached driver writing to outputDir. Callers must
// hold driverMu.
func (s *Server) driverFor(outputDir string) *driver.Driver {
	if outputDir == "" {
		outputDir = s.cfg.Driver.OutputDir
	}
	key, err := filepath.Abs(outputDir)
	if err != nil {
		key = outputDir
	}
	if d, ok := s.drivers[key]; ok {
		return d
	}
	opts := s.cfg.Driver
	opts.OutputDir = outputDir
	d := driver.New(opts, s.log)
	s.drivers[key] = d
	return d
}

func (s *Server) registerTools() {
	// build_locator
	s.addTool(
		mcp.NewTool("build_locator",
			mcp.WithDescription("Build a Xamarin.UITest query lambda from a recorded element path. Pass either adapters or a single id/title/role."),
			mcp.WithArray("adapters", mcp.Description("Path adapters, outermost first: objects with id, title and role")),
			mcp.WithString("id", mcp.Description("Adapter id (single-adapter path)")),
			mcp.WithString("title", mcp.Description("Adapter title (single-adapter path)")),
			mcp.WithString("role", mcp.Description("Adapter role (single-adapter path)")),
		),
		s.handleBuildLocator,
	)

	// translate
	s.addTool(
		mcp.NewTool("translate",
			mcp.WithDescription("Translate one recorded action, test activity or validation rule into Xamarin.UITest lines"),
			mcp.WithString("domain", mcp.Description("Record domain: action, activity, validation"), mcp.Required()),
			mcp.WithString("type", mcp.Description("Record type, e.g. click, setvalue, equals"), mcp.Required()),
			mcp.WithObject("attrs", mcp.Description("Record attributes, e.g. {\"target\": \"User\", \"value\": \"jdoe\"}")),
			mcp.WithArray("adapters", mcp.Description("Element path adapters for actions")),
			mcp.WithString("id", mcp.Description("Adapter id for a single-adapter action path")),
			mcp.WithString("title", mcp.Description("Adapter title for a single-adapter action path")),
			mcp.WithString("role", mcp.Description("Adapter role for a single-adapter action path")),
		),
		s.handleTranslate,
	)

	// convert_recording
	s.addTool(
		mcp.NewTool("convert_recording",
			mcp.WithDescription("Convert the XML of a recording (.rxrec) into a Xamarin.UITest test class"),
			mcp.WithString("name", mcp.Description("Recording name or file name; names the test class"), mcp.Required()),
			mcp.WithString("content", mcp.Description("Recording XML"), mcp.Required()),
			mcp.WithString("namespace", mcp.Description("Namespace for the generated class")),
			mcp.WithString("base_fixture", mcp.Description("Base fixture class name")),
		),
		s.handleConvertRecording,
	)

	// convert_suite
	s.addTool(
		mcp.NewTool("convert_suite",
			mcp.WithDescription("Convert the XML of a test suite (.rxtst) into one test class per test case"),
			mcp.WithString("name", mcp.Description("Suite name, used in error messages"), mcp.Required()),
			mcp.WithString("content", mcp.Description("Suite XML"), mcp.Required()),
			mcp.WithObject("steps", mcp.Description("Step documents keyed by the test case path attribute")),
			mcp.WithString("namespace", mcp.Description("Namespace for the generated classes")),
			mcp.WithString("base_fixture", mcp.Description("Base fixture class name")),
		),
		s.handleConvertSuite,
	)

	// convert_source
	s.addTool(
		mcp.NewTool("convert_source",
			mcp.WithDescription("Rewrite a Ranorex code module (.cs) for Xamarin.UITest"),
			mcp.WithString("name", mcp.Description("File name to keep"), mcp.Required()),
			mcp.WithString("content", mcp.Description("C# source text"), mcp.Required()),
		),
		s.handleConvertSource,
	)

	// convert_path
	s.addTool(
		mcp.NewTool("convert_path",
			mcp.WithDescription("Convert a file or directory tree on disk and write the generated tests to the output directory"),
			mcp.WithString("path", mcp.Description("Input file or directory"), mcp.Required()),
			mcp.WithString("output", mcp.Description("Output directory (defaults to the server's configured output)")),
		),
		s.handleConvertPath,
	)

	// scaffold
	s.addTool(
		mcp.NewTool("scaffold",
			mcp.WithDescription("Write the base test fixture and project file into an output directory"),
			mcp.WithString("output", mcp.Description("Output directory (defaults to the server's configured output)")),
			mcp.WithString("platform", mcp.Description("Target platform: android, ios")),
			mcp.WithString("app_path", mcp.Description("Path to the .apk or .app under test")),
		),
		s.handleScaffold,
	)
}
