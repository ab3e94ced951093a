// internal/sheets/client.go
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tcc_companion/internal/model"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Grid capacity used when a missing tab is provisioned.
const (
	tabRowCount    = 1000
	tabColumnCount = 26
)

// GoogleAdapter talks to one Google spreadsheet. Every call is bounded by
// the configured timeout so a slow remote can never stall a page render.
type GoogleAdapter struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	timeout       time.Duration
	logger        *slog.Logger
}

func NewGoogleAdapter(ctx context.Context, spreadsheetID, credentialsFile string, timeout time.Duration, logger *slog.Logger) (*GoogleAdapter, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID not configured: %w", model.ErrSyncUnavailable)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(credentialsFile), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", errors.Join(err, model.ErrSyncUnavailable))
	}
	return &GoogleAdapter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		timeout:       timeout,
		logger:        logger,
	}, nil
}

func (a *GoogleAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *GoogleAdapter) Push(ctx context.Context, tab string, values []any) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	vr := &sheetsapi.ValueRange{Values: [][]interface{}{values}}
	_, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, tab+"!A1", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		a.logger.Warn("Sheets append failed", "tab", tab, "error", err)
		return fmt.Errorf("appending to tab %s: %w", tab, errors.Join(err, model.ErrSyncUnavailable))
	}
	return nil
}

func (a *GoogleAdapter) Pull(ctx context.Context, tab string) ([]Row, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.svc.Spreadsheets.Values.Get(a.spreadsheetID, tab).Context(ctx).Do()
	if err != nil {
		if isMissingTab(err) {
			// Absent tab is not an error, just "no rows yet".
			return []Row{}, nil
		}
		a.logger.Warn("Sheets read failed", "tab", tab, "error", err)
		return nil, fmt.Errorf("reading tab %s: %w", tab, errors.Join(err, model.ErrSyncUnavailable))
	}
	if len(resp.Values) < 2 {
		return []Row{}, nil
	}
	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(cell))
	}
	return rowsToMaps(header, resp.Values[1:]), nil
}

func (a *GoogleAdapter) EnsureTab(ctx context.Context, tab string, header []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	meta, err := a.svc.Spreadsheets.Get(a.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("listing tabs: %w", errors.Join(err, model.ErrSyncUnavailable))
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == tab {
			return nil
		}
	}

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{
					Title: tab,
					GridProperties: &sheetsapi.GridProperties{
						RowCount:    tabRowCount,
						ColumnCount: tabColumnCount,
					},
				},
			},
		}},
	}
	if _, err := a.svc.Spreadsheets.BatchUpdate(a.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("creating tab %s: %w", tab, errors.Join(err, model.ErrSyncUnavailable))
	}

	headerValues := make([]any, len(header))
	for i, h := range header {
		headerValues[i] = h
	}
	if err := a.Push(ctx, tab, headerValues); err != nil {
		return fmt.Errorf("writing header of tab %s: %w", tab, err)
	}
	a.logger.Info("Provisioned remote tab", "tab", tab)
	return nil
}

// isMissingTab detects the "Unable to parse range" error the values API
// returns when the named tab does not exist.
func isMissingTab(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	if gerr.Code == 404 {
		return true
	}
	return gerr.Code == 400 && strings.Contains(gerr.Message, "Unable to parse range")
}
