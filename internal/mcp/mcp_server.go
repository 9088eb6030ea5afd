// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/seolens/seolens/internal/contract"
)

// NewMCPServer initializes and configures the Seolens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Seolens Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_performance ---
	s.AddTool(mcp.NewTool("score_performance",
		mcp.WithDescription("Score a client performance report across all five metrics and return the weighted overall score with red flags and recommendations."),
		mcp.WithString("input_json", mcp.Description("The full performance report as a JSON document."), mcp.Required()),
		mcp.WithString("client", mcp.Description("Client identifier override (defaults to the client field in the report).")),
	), h.handleScorePerformance)

	// --- 2. Tool: score_partial ---
	s.AddTool(mcp.NewTool("score_partial",
		mcp.WithDescription("Score a performance report with missing sections; weights renormalize over the available metrics and the result carries a data-confidence percentage."),
		mcp.WithString("input_json", mcp.Description("The performance report as a JSON document; sections may be omitted."), mcp.Required()),
		mcp.WithString("client", mcp.Description("Client identifier override.")),
	), h.handleScorePartial)

	// --- 3. Tool: validate_inputs ---
	s.AddTool(mcp.NewTool("validate_inputs",
		mcp.WithDescription("Check whether an engagement meets the minimum spend and duration requirements for analysis."),
		mcp.WithNumber("monthly_spend", mcp.Description("Monthly budget in dollars."), mcp.Required()),
		mcp.WithNumber("investment_months", mcp.Description("Elapsed engagement duration in months."), mcp.Required()),
	), h.handleValidateInputs)

	// --- 4. Tool: list_runs ---
	s.AddTool(mcp.NewTool("list_runs",
		mcp.WithDescription("List recent recorded scoring runs, newest first."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of runs to return.")),
	), h.handleListRuns)

	return s
}

// StartMCPServer starts the Seolens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
