package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"

	"google.golang.org/api/sheets/v4"
)

// Column layout, header in row 1.
//
//	partners: A code | B display name | C hours per month
//	usage:    A code | B date | C hours | D studio | E reservation ref | F note
const (
	usageColCode = iota
	usageColDate
	usageColHours
	usageColStudio
	usageColRef
	usageColNote
)

const sheetsHeaderRows = 1

var ErrSheetTabNotFound = errors.New("sheet tab not found")

// QuotaLedgerSheetsRepository keeps the ledger in a spreadsheet. Rows are
// addressed by position, so deletions are buffered and applied from the
// bottom up in a single batch.
type QuotaLedgerSheetsRepository struct {
	svc           *sheets.Service
	spreadsheetID string
	partnersTab   string
	usageTab      string

	// serializes read-then-write sequences from this process
	mu sync.Mutex
}

var _ interfaces.IQuotaLedgerRepository = (*QuotaLedgerSheetsRepository)(nil)

func NewQuotaLedgerSheetsRepository(svc *sheets.Service, spreadsheetID, partnersTab, usageTab string) *QuotaLedgerSheetsRepository {
	return &QuotaLedgerSheetsRepository{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		partnersTab:   partnersTab,
		usageTab:      usageTab,
	}
}

func (r *QuotaLedgerSheetsRepository) FindPartner(ctx context.Context, code string) (entities.PartnerQuota, error) {
	rows, err := r.readRows(ctx, r.partnersTab+"!A2:C")
	if err != nil {
		return entities.PartnerQuota{}, err
	}
	for i, row := range rows {
		if !entities.SameCode(cell(row, 0), code) {
			continue
		}
		hours, err := parseHours(cell(row, 2))
		if err != nil {
			return entities.PartnerQuota{}, fmt.Errorf("%s row %d: %w", r.partnersTab, i+sheetsHeaderRows+1, err)
		}
		return entities.PartnerQuota{
			Code:          strings.TrimSpace(cell(row, 0)),
			DisplayName:   strings.TrimSpace(cell(row, 1)),
			HoursPerMonth: hours,
		}, nil
	}
	return entities.PartnerQuota{}, nil
}

// ListUsage fails when any row for the code cannot be parsed rather than
// under-counting the partner's consumption.
func (r *QuotaLedgerSheetsRepository) ListUsage(ctx context.Context, code, yearMonth string) ([]entities.UsageRecord, error) {
	rows, err := r.readRows(ctx, r.usageRange())
	if err != nil {
		return nil, err
	}
	var out []entities.UsageRecord
	for i, row := range rows {
		if !entities.SameCode(cell(row, usageColCode), code) {
			continue
		}
		rec, err := r.parseUsageRow(i, row)
		if err != nil {
			return nil, err
		}
		if rec.YearMonth == yearMonth {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *QuotaLedgerSheetsRepository) AppendUsage(ctx context.Context, rec entities.UsageRecord) (entities.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ReservationReference != "" {
		rows, err := r.readRows(ctx, r.usageRange())
		if err != nil {
			return entities.UsageRecord{}, err
		}
		for i, row := range rows {
			if cell(row, usageColRef) == rec.ReservationReference {
				existing := r.looseUsageRow(i, row)
				return existing, nil
			}
		}
	}

	values := &sheets.ValueRange{Values: [][]interface{}{{
		rec.Code,
		rec.Date,
		rec.HoursConsumed,
		string(rec.Studio),
		rec.ReservationReference,
		rec.Note,
	}}}
	_, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, r.usageTab+"!A:F", values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return entities.UsageRecord{}, err
	}
	return rec, nil
}

func (r *QuotaLedgerSheetsRepository) ListReferencedUsage(ctx context.Context) ([]entities.UsageRecord, error) {
	rows, err := r.readRows(ctx, r.usageRange())
	if err != nil {
		return nil, err
	}
	var out []entities.UsageRecord
	for i, row := range rows {
		if cell(row, usageColRef) == "" {
			continue
		}
		out = append(out, r.looseUsageRow(i, row))
	}
	return out, nil
}

// DeleteUsageByReferences sends one batch of row deletions ordered from the
// highest row index to the lowest so that each index is still valid when
// its request is applied.
func (r *QuotaLedgerSheetsRepository) DeleteUsageByReferences(ctx context.Context, refs []string) (int, error) {
	set := refSet(refs)

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readRows(ctx, r.usageRange())
	if err != nil {
		return 0, err
	}
	var indexes []int64
	for i, row := range rows {
		if _, ok := set[cell(row, usageColRef)]; ok {
			indexes = append(indexes, int64(i+sheetsHeaderRows))
		}
	}
	if len(indexes) == 0 {
		return 0, nil
	}
	sort.Slice(indexes, func(a, b int) bool { return indexes[a] > indexes[b] })

	sheetID, err := r.tabID(ctx, r.usageTab)
	if err != nil {
		return 0, err
	}

	requests := make([]*sheets.Request, 0, len(indexes))
	for _, idx := range indexes {
		requests = append(requests, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:         sheetID,
					Dimension:       "ROWS",
					StartIndex:      idx,
					EndIndex:        idx + 1,
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
			},
		})
	}
	_, err = r.svc.Spreadsheets.BatchUpdate(r.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).
		Context(ctx).
		Do()
	if err != nil {
		return 0, err
	}
	return len(indexes), nil
}

func (r *QuotaLedgerSheetsRepository) usageRange() string {
	return r.usageTab + "!A2:F"
}

func (r *QuotaLedgerSheetsRepository) readRows(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, rng).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (r *QuotaLedgerSheetsRepository) tabID(ctx context.Context, title string) (int64, error) {
	ss, err := r.svc.Spreadsheets.Get(r.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrSheetTabNotFound, title)
}

func (r *QuotaLedgerSheetsRepository) parseUsageRow(i int, row []interface{}) (entities.UsageRecord, error) {
	rowNum := i + sheetsHeaderRows + 1
	hours, err := parseHours(cell(row, usageColHours))
	if err != nil {
		return entities.UsageRecord{}, fmt.Errorf("%s row %d: %w", r.usageTab, rowNum, err)
	}
	ym, ok := yearMonthFromDate(cell(row, usageColDate))
	if !ok {
		return entities.UsageRecord{}, fmt.Errorf("%s row %d: %w: date %q", r.usageTab, rowNum, entities.ErrMalformedLedgerRow, cell(row, usageColDate))
	}
	rec := r.looseUsageRow(i, row)
	rec.HoursConsumed = hours
	rec.YearMonth = ym
	return rec, nil
}

// looseUsageRow reads what it can without failing; used where only the
// reference matters.
func (r *QuotaLedgerSheetsRepository) looseUsageRow(i int, row []interface{}) entities.UsageRecord {
	hours, _ := parseHours(cell(row, usageColHours))
	ym, _ := yearMonthFromDate(cell(row, usageColDate))
	return entities.UsageRecord{
		ID:                   strconv.Itoa(i + sheetsHeaderRows + 1),
		Code:                 strings.TrimSpace(cell(row, usageColCode)),
		YearMonth:            ym,
		Date:                 cell(row, usageColDate),
		HoursConsumed:        hours,
		Studio:               entities.Studio(cell(row, usageColStudio)),
		ReservationReference: cell(row, usageColRef),
		Note:                 cell(row, usageColNote),
	}
}

func yearMonthFromDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", "2006/01/02", "2006/1/2"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
