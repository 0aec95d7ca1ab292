package calendar_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/calbridge/internal/agenda"
	"github.com/teemow/calbridge/internal/calendar"
	"github.com/teemow/calbridge/internal/server"
	"github.com/teemow/calbridge/internal/timeutil"
	"github.com/teemow/calbridge/internal/tools/common"
)

// listedEvent is one event in the list_events_in_time_frame response.
type listedEvent struct {
	Calendar string `json:"calendar"`
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
	AllDay   bool   `json:"all_day"`
	EventID  string `json:"event_id"`
}

type listEventsResult struct {
	Events []listedEvent `json:"events"`
}

type createEventResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type deletedEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
}

type deleteEventResult struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Deleted []deletedEvent `json:"deleted"`
}

// RegisterEventTools registers the event tools with the MCP server.
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	zone := sc.Config().ReferenceZone

	listEventsTool := mcp.NewTool("list_events_in_time_frame",
		mcp.WithDescription(fmt.Sprintf(`List all events across the configured calendars from time_start to time_end, sorted by start time. Returns JSON only.

All output timestamps use the reference timezone (%s). Time format is ISO 8601 with timezone offset, e.g. '2026-01-28T00:00:00-05:00'. If specific times are not provided, default to the beginning of the start date (00:00:00) and the end of the end date (23:59:59) so all events within the range are captured.`, zone)),
		mcp.WithString("time_start",
			mcp.Required(),
			mcp.Description("Start of the time range (ISO 8601 with offset, e.g. '2026-01-28T00:00:00-05:00')"),
		),
		mcp.WithString("time_end",
			mcp.Required(),
			mcp.Description("End of the time range (ISO 8601 with offset, e.g. '2026-01-28T23:59:59-05:00')"),
		),
	)

	s.AddTool(listEventsTool, common.InstrumentedToolHandler("list_events_in_time_frame", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	createEventTool := mcp.NewTool("create_event",
		mcp.WithDescription(fmt.Sprintf("Create an event on the primary calendar with the given title, description, start, and end. The event's display timezone is %s and attendees are notified.", zone)),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (ISO 8601, e.g. '2026-01-28T10:00:00-05:00')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (ISO 8601, e.g. '2026-01-28T11:00:00-05:00')"),
		),
	)

	s.AddTool(createEventTool, common.InstrumentedToolHandler("create_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	deleteEventTool := mcp.NewTool("delete_event",
		mcp.WithDescription("Delete event(s) matching a title and date. The title matches case-insensitively as a substring. A bare date ('2026-01-28') deletes matches across the whole day; a date-time ('2026-01-28T10:00:00-05:00') deletes matches starting within 30 minutes. Attendees are notified. Fails if nothing matches."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title fragment (case-insensitive partial match)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date in ISO format: '2026-01-28' or '2026-01-28T10:00:00-05:00'"),
		),
	)

	s.AddTool(deleteEventTool, common.InstrumentedToolHandler("delete_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		}))

	return nil
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	timeStart, ok := args["time_start"].(string)
	if !ok || timeStart == "" {
		return mcp.NewToolResultError("time_start is required"), nil
	}
	timeEnd, ok := args["time_end"].(string)
	if !ok || timeEnd == "" {
		return mcp.NewToolResultError("time_end is required"), nil
	}

	start, err := timeutil.ParseUTCBound(timeStart)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid time_start: %v", err)), nil
	}
	end, err := timeutil.ParseUTCBound(timeEnd)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid time_end: %v", err)), nil
	}

	svc, err := getAgenda(ctx, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := svc.FetchAcross(ctx, agenda.TimeWindow{Start: start, End: end})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	result := listEventsResult{Events: make([]listedEvent, 0, len(events))}
	for _, event := range events {
		result.Events = append(result.Events, listedEvent{
			Calendar: event.CalendarID,
			Summary:  event.Summary,
			Start:    event.Start.Format(time.RFC3339),
			End:      event.End.Format(time.RFC3339),
			AllDay:   event.AllDay,
			EventID:  event.EventID,
		})
	}
	return jsonResult(result)
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	zone := sc.Config().ReferenceZone

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}
	description, _ := args["description"].(string)

	startStr, ok := args["start"].(string)
	if !ok || startStr == "" {
		return mcp.NewToolResultError("start is required"), nil
	}
	start, err := timeutil.ParseAnchored(startStr, zone)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid start: %v", err)), nil
	}

	endStr, ok := args["end"].(string)
	if !ok || endStr == "" {
		return mcp.NewToolResultError("end is required"), nil
	}
	end, err := timeutil.ParseAnchored(endStr, zone)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid end: %v", err)), nil
	}

	if _, err := getAgenda(ctx, sc); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	provider, err := sc.Provider(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	input := calendar.EventInput{
		Summary:     title,
		Description: description,
		Start:       start,
		End:         end,
		TimeZone:    zone.String(),
	}
	if _, err := provider.InsertEvent(ctx, "primary", input, calendar.SendUpdatesAll); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
	}

	return jsonResult(createEventResult{
		Status:  "success",
		Message: fmt.Sprintf("Event '%s' created successfully", title),
		Start:   start.Format(time.RFC3339),
		End:     end.Format(time.RFC3339),
	})
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}
	date, ok := args["date"].(string)
	if !ok || date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	svc, err := getAgenda(ctx, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := svc.DeleteByTitleAndDate(ctx, title, date)
	if agenda.IsNotFound(err) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete event: %v", err)), nil
	}

	out := deleteEventResult{
		Status:  "success",
		Message: fmt.Sprintf("Deleted %d event(s)", len(result.Deleted)),
		Deleted: make([]deletedEvent, 0, len(result.Deleted)),
	}
	for _, d := range result.Deleted {
		out.Deleted = append(out.Deleted, deletedEvent{
			Title: d.Title,
			Start: d.Start.Format(time.RFC3339),
		})
	}
	return jsonResult(out)
}

// jsonResult marshals v and wraps it in a text result. The tool surface
// returns JSON only.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
