package cmd

import (
	"os"

	"github.com/mj1618/rx2uitest/internal/driver"
	"github.com/mj1618/rx2uitest/internal/logging"
	"github.com/mj1618/rx2uitest/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the converter as tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the converter as
tools. Agents can translate single records, convert documents passed inline, or
convert files on disk without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  rx2uitest serve
  rx2uitest serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().StringP("output", "o", "", "Default output directory for convert_path and scaffold")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	c := cfg
	overrideString(cmd, "output", &c.Output)
	if err := c.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	// stdout carries the stdio transport, so logs go to stderr only.
	srv := server.New(server.Config{
		Transport: transport,
		Port:      port,
		Driver: driver.Options{
			OutputDir:  c.Output,
			Convert:    c.ConvertOptions(),
			Scaffold:   c.ScaffoldOptions(),
			NoScaffold: !c.Scaffold,
		},
	}, logging.New(level, os.Stderr))
	return srv.Serve()
}
