package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"hrboard/internal/domain/tracker"
	"hrboard/internal/sheet"
)

type toolHandlers struct {
	svc *tracker.Service
}

func registerTools(server *sdkmcp.Server, svc *tracker.Service) {
	h := &toolHandlers{svc: svc}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_updates",
		Description: "List HR updates with optional filters (only-ongoing, status, business unit, owner) and sorting",
	}, h.listUpdates)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_update",
		Description: "Get a single HR update by id",
	}, h.getUpdate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_update",
		Description: "Add a new HR update; activity is required, target date must be a valid YYYY-MM-DD date",
	}, h.addUpdate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "edit_update",
		Description: "Edit fields of an existing HR update; omitted fields are left unchanged",
	}, h.editUpdate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_update",
		Description: "Delete one HR update by id; requires confirm: true",
	}, h.deleteUpdate)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "bulk_edit",
		Description: "Apply status/owner/business-unit values to a selection of ids in one undoable step",
	}, h.bulkEdit)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "bulk_delete",
		Description: "Delete a selection of ids in one undoable step; requires confirm: true",
	}, h.bulkDelete)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "undo",
		Description: "Undo the most recent mutation (history holds up to 10 steps)",
	}, h.undo)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "redo",
		Description: "Redo the most recently undone mutation",
	}, h.redo)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_stats",
		Description: "Per-status counts and percentages plus the distinct business-unit and owner sets",
	}, h.getStats)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_updates",
		Description: "Replace the whole board with rows from a csv or xlsx payload; requires confirm: true",
	}, h.importUpdates)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_updates",
		Description: "Export all updates as a csv or xlsx payload with a suggested filename",
	}, h.exportUpdates)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_now",
		Description: "Persist any pending debounced save immediately",
	}, h.saveNow)
}

type ListUpdatesArgs struct {
	OnlyOngoing  bool   `json:"only_ongoing,omitempty"`
	Status       string `json:"status,omitempty"`
	BusinessUnit string `json:"bu,omitempty"`
	Owner        string `json:"owner,omitempty"`
	SortBy       string `json:"sort_by,omitempty"` // activity, bu, owner, status, date
	Descending   bool   `json:"descending,omitempty"`
}

type ListUpdatesResult struct {
	Updates []tracker.Record `json:"updates"`
	Total   int              `json:"total"`
}

func (h *toolHandlers) listUpdates(ctx context.Context, req *sdkmcp.CallToolRequest, args ListUpdatesArgs) (*sdkmcp.CallToolResult, ListUpdatesResult, error) {
	filter := tracker.Filter{
		OnlyOngoing:  args.OnlyOngoing,
		BusinessUnit: args.BusinessUnit,
		Owner:        args.Owner,
	}
	if args.Status != "" {
		filter.Status = tracker.Normalize(args.Status)
	}
	view := h.svc.List(filter, tracker.Sort{
		Key:        tracker.SortKey(args.SortBy),
		Descending: args.Descending,
	})
	return nil, ListUpdatesResult{Updates: view, Total: len(view)}, nil
}

type GetUpdateArgs struct {
	ID string `json:"id"`
}

func (h *toolHandlers) getUpdate(ctx context.Context, req *sdkmcp.CallToolRequest, args GetUpdateArgs) (*sdkmcp.CallToolResult, tracker.Record, error) {
	rec, err := h.svc.Get(args.ID)
	if err != nil {
		return nil, tracker.Record{}, mapError(err)
	}
	return nil, rec, nil
}

type AddUpdateArgs struct {
	Activity     string `json:"activity"`
	BusinessUnit string `json:"bu,omitempty"`
	Owner        string `json:"owner,omitempty"`
	Status       string `json:"status,omitempty"`
	TargetDate   string `json:"date,omitempty"`
	Details      string `json:"details,omitempty"`
}

func (h *toolHandlers) addUpdate(ctx context.Context, req *sdkmcp.CallToolRequest, args AddUpdateArgs) (*sdkmcp.CallToolResult, tracker.Record, error) {
	rec, err := h.svc.Add(tracker.Draft{
		Activity:     args.Activity,
		BusinessUnit: args.BusinessUnit,
		Owner:        args.Owner,
		Status:       args.Status,
		TargetDate:   args.TargetDate,
		Details:      args.Details,
	})
	if err != nil {
		return nil, tracker.Record{}, mapError(err)
	}
	return nil, rec, nil
}

type EditUpdateArgs struct {
	ID           string  `json:"id"`
	Activity     *string `json:"activity,omitempty"`
	BusinessUnit *string `json:"bu,omitempty"`
	Owner        *string `json:"owner,omitempty"`
	Status       *string `json:"status,omitempty"`
	TargetDate   *string `json:"date,omitempty"`
	Details      *string `json:"details,omitempty"`
}

func (h *toolHandlers) editUpdate(ctx context.Context, req *sdkmcp.CallToolRequest, args EditUpdateArgs) (*sdkmcp.CallToolResult, tracker.Record, error) {
	rec, err := h.svc.Update(args.ID, tracker.Patch{
		Activity:     args.Activity,
		BusinessUnit: args.BusinessUnit,
		Owner:        args.Owner,
		Status:       args.Status,
		TargetDate:   args.TargetDate,
		Details:      args.Details,
	})
	if err != nil {
		return nil, tracker.Record{}, mapError(err)
	}
	return nil, rec, nil
}

type DeleteUpdateArgs struct {
	ID      string `json:"id"`
	Confirm bool   `json:"confirm,omitempty"`
}

type DeleteUpdateResult struct {
	Deleted bool `json:"deleted"`
}

func (h *toolHandlers) deleteUpdate(ctx context.Context, req *sdkmcp.CallToolRequest, args DeleteUpdateArgs) (*sdkmcp.CallToolResult, DeleteUpdateResult, error) {
	if !args.Confirm {
		return nil, DeleteUpdateResult{}, mapError(ErrConfirmRequired)
	}
	return nil, DeleteUpdateResult{Deleted: h.svc.Remove(args.ID)}, nil
}

type BulkEditArgs struct {
	IDs          []string `json:"ids"`
	Status       string   `json:"status,omitempty"`
	Owner        string   `json:"owner,omitempty"`
	BusinessUnit string   `json:"bu,omitempty"`
}

type BulkEditResult struct {
	Updated int `json:"updated"`
}

func (h *toolHandlers) bulkEdit(ctx context.Context, req *sdkmcp.CallToolRequest, args BulkEditArgs) (*sdkmcp.CallToolResult, BulkEditResult, error) {
	updated := h.svc.BulkUpdate(args.IDs, tracker.BulkPatch{
		Status:       args.Status,
		Owner:        args.Owner,
		BusinessUnit: args.BusinessUnit,
	})
	return nil, BulkEditResult{Updated: updated}, nil
}

type BulkDeleteArgs struct {
	IDs     []string `json:"ids"`
	Confirm bool     `json:"confirm,omitempty"`
}

type BulkDeleteResult struct {
	Deleted int `json:"deleted"`
}

func (h *toolHandlers) bulkDelete(ctx context.Context, req *sdkmcp.CallToolRequest, args BulkDeleteArgs) (*sdkmcp.CallToolResult, BulkDeleteResult, error) {
	if !args.Confirm {
		return nil, BulkDeleteResult{}, mapError(ErrConfirmRequired)
	}
	return nil, BulkDeleteResult{Deleted: h.svc.BulkDelete(args.IDs)}, nil
}

type HistoryResult struct {
	Applied bool `json:"applied"`
	Total   int  `json:"total"`
}

func (h *toolHandlers) undo(ctx context.Context, req *sdkmcp.CallToolRequest, args struct{}) (*sdkmcp.CallToolResult, HistoryResult, error) {
	applied := h.svc.Undo()
	return nil, HistoryResult{Applied: applied, Total: len(h.svc.Records())}, nil
}

func (h *toolHandlers) redo(ctx context.Context, req *sdkmcp.CallToolRequest, args struct{}) (*sdkmcp.CallToolResult, HistoryResult, error) {
	applied := h.svc.Redo()
	return nil, HistoryResult{Applied: applied, Total: len(h.svc.Records())}, nil
}

type StatsResult struct {
	Total         int                   `json:"total"`
	Breakdown     []tracker.StatusCount `json:"breakdown"`
	BusinessUnits []string              `json:"business_units"`
	Owners        []string              `json:"owners"`
}

func (h *toolHandlers) getStats(ctx context.Context, req *sdkmcp.CallToolRequest, args struct{}) (*sdkmcp.CallToolResult, StatsResult, error) {
	breakdown, units, owners := h.svc.Stats()
	return nil, StatsResult{
		Total:         len(h.svc.Records()),
		Breakdown:     breakdown,
		BusinessUnits: units,
		Owners:        owners,
	}, nil
}

type ImportUpdatesArgs struct {
	Format  string `json:"format"`  // "csv" or "xlsx"
	Content string `json:"content"` // csv: plain text, xlsx: base64
	Confirm bool   `json:"confirm,omitempty"`
}

type ImportUpdatesResult struct {
	Imported int `json:"imported"`
	Dropped  int `json:"dropped"`
}

func (h *toolHandlers) importUpdates(ctx context.Context, req *sdkmcp.CallToolRequest, args ImportUpdatesArgs) (*sdkmcp.CallToolResult, ImportUpdatesResult, error) {
	if !args.Confirm {
		return nil, ImportUpdatesResult{}, mapError(ErrConfirmRequired)
	}

	codec, err := sheet.CodecFor(args.Format)
	if err != nil {
		return nil, ImportUpdatesResult{}, err
	}

	payload := []byte(args.Content)
	if args.Format == "xlsx" {
		payload, err = base64.StdEncoding.DecodeString(args.Content)
		if err != nil {
			return nil, ImportUpdatesResult{}, fmt.Errorf("decoding content: %w", err)
		}
	}

	rows, err := codec.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, ImportUpdatesResult{}, fmt.Errorf("reading %s payload: %w", args.Format, err)
	}

	records, dropped, err := sheet.FromRows(rows)
	if err != nil {
		return nil, ImportUpdatesResult{Dropped: dropped}, mapError(err)
	}
	if err := h.svc.ImportRecords(records); err != nil {
		return nil, ImportUpdatesResult{Dropped: dropped}, mapError(err)
	}
	return nil, ImportUpdatesResult{Imported: len(records), Dropped: dropped}, nil
}

type ExportUpdatesArgs struct {
	Format string `json:"format"` // "csv" or "xlsx"
}

type ExportUpdatesResult struct {
	Filename string `json:"filename"`
	Encoding string `json:"encoding"` // "text" or "base64"
	Content  string `json:"content"`
}

func (h *toolHandlers) exportUpdates(ctx context.Context, req *sdkmcp.CallToolRequest, args ExportUpdatesArgs) (*sdkmcp.CallToolResult, ExportUpdatesResult, error) {
	codec, err := sheet.CodecFor(args.Format)
	if err != nil {
		return nil, ExportUpdatesResult{}, err
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, sheet.ToRows(h.svc.Records())); err != nil {
		return nil, ExportUpdatesResult{}, fmt.Errorf("encoding %s payload: %w", args.Format, err)
	}

	result := ExportUpdatesResult{
		Filename: "hr-updates." + strings.ToLower(args.Format),
		Encoding: "text",
		Content:  buf.String(),
	}
	if args.Format == "xlsx" {
		result.Encoding = "base64"
		result.Content = base64.StdEncoding.EncodeToString(buf.Bytes())
	}
	return nil, result, nil
}

type SaveNowResult struct {
	Saved bool `json:"saved"`
}

func (h *toolHandlers) saveNow(ctx context.Context, req *sdkmcp.CallToolRequest, args struct{}) (*sdkmcp.CallToolResult, SaveNowResult, error) {
	if err := h.svc.Flush(ctx); err != nil {
		return nil, SaveNowResult{}, mapError(err)
	}
	return nil, SaveNowResult{Saved: true}, nil
}
