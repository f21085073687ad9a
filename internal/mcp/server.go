package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the gymrank tools: schema, achievements,
// rank, achievement progress and workouts. It is mounted by the main backend
// at /mcp and served over stdio by cmd/achievements_mcp.
func NewServer(svc *ContextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymrank-achievements",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymrank_context",
		Description: "Returns the DB schema for gymrank tables (workout_session, bodyweight_report, unlocked_achievement): table names, columns, types, nullable, default.",
	}, h.GetGymrankContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_achievements",
		Description: "Returns the achievement report: unlocked achievements with unlock time, locked ones with progress, total points, rank and per-category completion.",
	}, h.GetAchievementsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_rank",
		Description: "Returns the current rank tier, the next tier and the points still needed to reach it.",
	}, h.GetRankTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_achievement_progress",
		Description: "Returns how close the athlete is to unlocking one achievement. Arg: achievement_id (e.g. streak_7).",
	}, h.GetAchievementProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts_for_time_range",
		Description: "Returns workout sessions (exercises and sets) performed within the given date range. Args: from_date, to_date (YYYY-MM-DD).",
	}, h.GetWorkoutsForTimeRangeTool())

	return s
}
