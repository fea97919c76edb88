// File: pharmabook/services/ledger/sheets.go
package ledger

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsLedger appends and updates rows on the audit spreadsheet.
// The ledger is advisory: callers treat every failure here as non-fatal.
type GoogleSheetsLedger struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewGoogleSheetsLedger builds a service-account backed Sheets client.
func NewGoogleSheetsLedger(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*GoogleSheetsLedger, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to create sheets service: %w", err)
	}
	return &GoogleSheetsLedger{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

// AppendRow inserts one row below the existing data (columns A..K).
func (l *GoogleSheetsLedger) AppendRow(ctx context.Context, row []interface{}) error {
	vr := &sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]interface{}{row},
	}
	_, err := l.svc.Spreadsheets.Values.Append(l.spreadsheetID, l.sheetName+"!A2:K", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("ledger: append row: %w", err)
	}
	return nil
}

// GetAllRows reads every row of the sheet (columns A..K), header included.
func (l *GoogleSheetsLedger) GetAllRows(ctx context.Context) ([][]interface{}, error) {
	res, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, l.sheetName+"!A:K").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ledger: get rows: %w", err)
	}
	return res.Values, nil
}

// UpdateRange overwrites the cells at the given A1 address (sheet name is
// added here, callers pass e.g. "K5" or "E5:K5").
func (l *GoogleSheetsLedger) UpdateRange(ctx context.Context, a1Range string, values [][]interface{}) error {
	vr := &sheets.ValueRange{Values: values}
	_, err := l.svc.Spreadsheets.Values.Update(l.spreadsheetID, l.sheetName+"!"+a1Range, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("ledger: update range %s: %w", a1Range, err)
	}
	return nil
}
