package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/seolens/seolens/core"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/loader"
	"github.com/seolens/seolens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// parseInput decodes the report JSON carried in the request arguments and
// applies the optional client override.
func (h *toolHandler) parseInput(request mcp.CallToolRequest) (*schema.ScoreInput, error) {
	raw := request.GetString("input_json", "")
	if raw == "" {
		return nil, fmt.Errorf("input_json is required")
	}
	input, err := loader.ParseScoreInput([]byte(raw))
	if err != nil {
		return nil, err
	}
	if c := request.GetString("client", ""); c != "" {
		input.Client = c
	}
	return input, nil
}

func (h *toolHandler) handleScorePerformance(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parsed, err := h.parseInput(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid input: %v", err)), nil
	}

	policy := core.NewPolicy(h.baseCfg.Scoring)
	overall, err := policy.Score(*parsed)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(overall, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScorePartial(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parsed, err := h.parseInput(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid input: %v", err)), nil
	}

	policy := core.NewPolicy(h.baseCfg.Scoring)
	partial := policy.PartialScore(*parsed)

	jsonData, _ := json.MarshalIndent(partial, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleValidateInputs(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spend := request.GetFloat("monthly_spend", 0)
	months := request.GetInt("investment_months", 0)

	policy := core.NewPolicy(h.baseCfg.Scoring)
	if err := policy.ValidateScoreInputs(spend, months); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("inputs meet the minimum engagement requirements"), nil
}

func (h *toolHandler) handleListRuns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", contract.DefaultHistoryRows)
	if limit <= 0 || limit > contract.MaxHistoryRows {
		return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", contract.MaxHistoryRows)), nil
	}

	if h.mgr == nil || h.mgr.GetRunStore() == nil {
		return mcp.NewToolResultError("run history is not initialized"), nil
	}

	runs, err := h.mgr.GetRunStore().ListRuns(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list runs: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
