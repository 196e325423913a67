package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amankaushik/achilles-workout-tracker/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	maxDays  = 365
	maxWeeks = 52
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// SessionInput is the input of the tools that only need the session.
type SessionInput struct {
	SessionID string `json:"session_id" jsonschema:"Workout tracker session id"`
}

// ExerciseInput is the input for get_exercise_record.
type ExerciseInput struct {
	SessionID string `json:"session_id" jsonschema:"Workout tracker session id"`
	Exercise  string `json:"exercise" jsonschema:"Exercise name, exactly as logged (e.g. Bench Press)"`
}

// ProgressionInput is the input for get_exercise_progression.
type ProgressionInput struct {
	SessionID string `json:"session_id" jsonschema:"Workout tracker session id"`
	Exercise  string `json:"exercise" jsonschema:"Exercise name, exactly as logged (e.g. Bench Press)"`
	Days      int    `json:"days,omitempty" jsonschema:"Window size in days, 1 to 365 (default 30)"`
}

// WeeklyInput is the input for get_weekly_frequency.
type WeeklyInput struct {
	SessionID string `json:"session_id" jsonschema:"Workout tracker session id"`
	Weeks     int    `json:"weeks,omitempty" jsonschema:"Number of weeks, 1 to 52 (default 4)"`
}

// CalendarInput is the input for get_workout_calendar.
type CalendarInput struct {
	SessionID string `json:"session_id" jsonschema:"Workout tracker session id"`
	Days      int    `json:"days,omitempty" jsonschema:"Number of days, 1 to 365 (default 28)"`
}

// GetWorkoutLogContextTool returns the MCP tool handler for get_workout_log_context.
func (h *Handler) GetWorkoutLogContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetSessionStorageTool() func(context.Context, *mcp.CallToolRequest, SessionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		text, err := h.service.GetSessionStorage(ctx, in.SessionID)
		if err != nil {
			return errorResult("Error counting stored rows: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetStatsOverviewTool() func(context.Context, *mcp.CallToolRequest, SessionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		overview, err := h.service.Overview(ctx, in.SessionID)
		if err != nil {
			return errorResult("Error computing stats overview: " + err.Error()), nil, nil
		}
		return jsonResult(overview), nil, nil
	}
}

func (h *Handler) GetExerciseProgressionTool() func(context.Context, *mcp.CallToolRequest, ProgressionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressionInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		if strings.TrimSpace(in.Exercise) == "" {
			return errorResult("Missing exercise"), nil, nil
		}
		days, res := countOrDefault("days", in.Days, stats.DefaultProgressionDays, maxDays)
		if res != nil {
			return res, nil, nil
		}
		progression, err := h.service.Progression(ctx, in.SessionID, in.Exercise, days)
		if err != nil {
			return errorResult("Error computing exercise progression: " + err.Error()), nil, nil
		}
		return jsonResult(progression), nil, nil
	}
}

func (h *Handler) GetWeeklyFrequencyTool() func(context.Context, *mcp.CallToolRequest, WeeklyInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeeklyInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		weeks, res := countOrDefault("weeks", in.Weeks, stats.DefaultWeeks, maxWeeks)
		if res != nil {
			return res, nil, nil
		}
		weekly, err := h.service.Weekly(ctx, in.SessionID, weeks)
		if err != nil {
			return errorResult("Error computing weekly frequency: " + err.Error()), nil, nil
		}
		return jsonResult(weekly), nil, nil
	}
}

func (h *Handler) GetWorkoutCalendarTool() func(context.Context, *mcp.CallToolRequest, CalendarInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CalendarInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		days, res := countOrDefault("days", in.Days, stats.DefaultCalendarDays, maxDays)
		if res != nil {
			return res, nil, nil
		}
		calendar, err := h.service.Calendar(ctx, in.SessionID, days)
		if err != nil {
			return errorResult("Error computing workout calendar: " + err.Error()), nil, nil
		}
		return jsonResult(calendar), nil, nil
	}
}

func (h *Handler) GetStreakTool() func(context.Context, *mcp.CallToolRequest, SessionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		streak, err := h.service.Streak(ctx, in.SessionID)
		if err != nil {
			return errorResult("Error computing streak: " + err.Error()), nil, nil
		}
		return jsonResult(streak), nil, nil
	}
}

func (h *Handler) GetExerciseRecordTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		if strings.TrimSpace(in.Exercise) == "" {
			return errorResult("Missing exercise"), nil, nil
		}
		record, err := h.service.ExerciseRecord(ctx, in.SessionID, in.Exercise)
		if errors.Is(err, stats.ErrExerciseNotFound) {
			return textResult(fmt.Sprintf("No completed workout has the exercise %q.", in.Exercise)), nil, nil
		}
		if err != nil {
			return errorResult("Error computing exercise record: " + err.Error()), nil, nil
		}
		return jsonResult(record), nil, nil
	}
}

func (h *Handler) GetMostImprovedTool() func(context.Context, *mcp.CallToolRequest, SessionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		improved, err := h.service.MostImproved(ctx, in.SessionID)
		if errors.Is(err, stats.ErrNoMostImproved) {
			return textResult("No exercise has at least two logged days in the last 90 days."), nil, nil
		}
		if err != nil {
			return errorResult("Error computing most improved exercise: " + err.Error()), nil, nil
		}
		return jsonResult(improved), nil, nil
	}
}

func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, SessionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionInput) (*mcp.CallToolResult, any, error) {
		if res := checkSession(in.SessionID); res != nil {
			return res, nil, nil
		}
		names, err := h.service.Exercises(ctx, in.SessionID)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(names), nil, nil
	}
}

func checkSession(sessionID string) *mcp.CallToolResult {
	if strings.TrimSpace(sessionID) == "" {
		return errorResult("Missing session_id")
	}
	return nil
}

// countOrDefault returns def for a zero count.
func countOrDefault(name string, count, def, maxCount int) (int, *mcp.CallToolResult) {
	if count == 0 {
		return def, nil
	}
	if count < 0 || count > maxCount {
		return 0, errorResult(fmt.Sprintf("Invalid %s: must be between 1 and %d", name, maxCount))
	}
	return count, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
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
	return textResult(string(raw))
}
