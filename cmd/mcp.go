package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ai-navigator/internal/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the scoring tools over MCP stdio",
	Long:  "Runs an MCP server on stdin/stdout exposing compute_recommendation, classify_severity and get_roadmap. Logs go to stderr.",
	RunE: func(cmd *cobra.Command, args []string) error {
		zap.L().Info("starting mcp server", zap.String("version", version))
		return server.ServeStdio(mcptools.NewServer(version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
