package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/2beens/gymrank/internal/achievements"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetGymrankContextTool returns the MCP tool handler for get_gymrank_context.
func (h *Handler) GetGymrankContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// GetAchievementsTool returns the MCP tool handler for get_achievements.
func (h *Handler) GetAchievementsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		report, err := h.service.GetAchievements(ctx)
		if err != nil {
			return errorResult("Error fetching achievements: " + err.Error()), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// GetRankTool returns the MCP tool handler for get_rank.
func (h *Handler) GetRankTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		progress, err := h.service.GetRank(ctx)
		if err != nil {
			return errorResult("Error fetching rank: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

// AchievementProgressInput is the input for get_achievement_progress.
type AchievementProgressInput struct {
	AchievementID string `json:"achievement_id" jsonschema:"Achievement id (e.g. streak_7, bench_100)"`
}

// GetAchievementProgressTool returns the MCP tool handler for get_achievement_progress.
func (h *Handler) GetAchievementProgressTool() func(context.Context, *mcp.CallToolRequest, AchievementProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AchievementProgressInput) (*mcp.CallToolResult, any, error) {
		id := strings.TrimSpace(in.AchievementID)
		if id == "" {
			return errorResult("Missing achievement_id"), nil, nil
		}
		progress, err := h.service.GetAchievementProgress(ctx, id)
		if errors.Is(err, achievements.ErrUnknownAchievement) {
			return errorResult("Unknown achievement: " + id), nil, nil
		}
		if err != nil {
			return errorResult("Error fetching progress: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

// WorkoutsTimeRangeInput is the input for get_workouts_for_time_range.
type WorkoutsTimeRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD)"`
}

// GetWorkoutsForTimeRangeTool returns the MCP tool handler for get_workouts_for_time_range.
func (h *Handler) GetWorkoutsForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, WorkoutsTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutsTimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, err := time.Parse(time.DateOnly, in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := time.Parse(time.DateOnly, in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())

		list, err := h.service.ListWorkouts(ctx, from, to)
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}
