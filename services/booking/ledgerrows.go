package booking

import (
	"context"
	"fmt"
	"strings"

	"pharmabook/models"
	"pharmabook/utils"

	"go.uber.org/zap"
)

// Ledger column layout (fixed order, columns A..K):
// loggedAtUTC, bookingRef, action, appointmentType, startLocal, endLocal,
// name, contact, source, notes, status.
const (
	colBookingRef = 1
	colName       = 6
	colContact    = 7
	colSource     = 8
	colNotes      = 9
	colStatus     = 10
)

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return fmt.Sprint(row[i])
}

// rowMutable reports whether the row may still be updated. Rows already
// cancelled are immutable history.
func rowMutable(row []interface{}) bool {
	status := cell(row, colStatus)
	return status == models.StatusConfirmed || status == models.StatusRescheduled
}

// appendLedgerRow logs a booking action. Best-effort: a failure is logged
// and otherwise ignored, the calendar remains authoritative.
func (s *DefaultBookingService) appendLedgerRow(ctx context.Context, status, appointmentType, startISO, endISO, name, contact, bookingRef, notes string) {
	loggedAt := s.now().UTC().Format("01/02/2006 15:04:05") + " UTC"
	row := []interface{}{
		loggedAt, bookingRef, "book", appointmentType,
		s.formatLedgerLocalISO(startISO), s.formatLedgerLocalISO(endISO),
		name, contact,
		s.Source, notes, status,
	}
	if err := s.Ledger.AppendRow(ctx, row); err != nil {
		utils.GetLogger().Warn("ledger: append failed",
			zap.String("bookingRef", bookingRef), zap.Error(err))
	}
}

// updateLedgerStatus finds the row for bookingRef and rewrites its status
// column, appending the given notes to the notes column when present.
// Returns false when no mutable matching row exists or a write fails.
func (s *DefaultBookingService) updateLedgerStatus(ctx context.Context, bookingRef, newStatus, notes string) bool {
	logger := utils.GetLogger()
	rows, err := s.Ledger.GetAllRows(ctx)
	if err != nil {
		logger.Warn("ledger: fetch rows failed", zap.String("bookingRef", bookingRef), zap.Error(err))
		return false
	}

	for i, row := range rows {
		if cell(row, colBookingRef) != bookingRef {
			continue
		}
		if !rowMutable(row) {
			continue
		}

		statusRange := fmt.Sprintf("K%d", i+1)
		if err := s.Ledger.UpdateRange(ctx, statusRange, [][]interface{}{{newStatus}}); err != nil {
			logger.Warn("ledger: status update failed", zap.String("bookingRef", bookingRef), zap.Error(err))
			return false
		}

		if notes != "" {
			existing := cell(row, colNotes)
			updated := "Cancelled: " + notes
			if existing != "" {
				updated = existing + ". Cancelled: " + notes
			}
			notesRange := fmt.Sprintf("J%d", i+1)
			if err := s.Ledger.UpdateRange(ctx, notesRange, [][]interface{}{{updated}}); err != nil {
				logger.Warn("ledger: notes update failed", zap.String("bookingRef", bookingRef), zap.Error(err))
			}
		}
		return true
	}

	logger.Warn("ledger: no mutable row for ref", zap.String("bookingRef", bookingRef))
	return false
}

// updateLedgerReschedule rewrites the matching row's time, notes and status
// cells in place. No new row is appended for a reschedule.
func (s *DefaultBookingService) updateLedgerReschedule(ctx context.Context, bookingRef, newStartISO, newEndISO, notes string) bool {
	logger := utils.GetLogger()
	rows, err := s.Ledger.GetAllRows(ctx)
	if err != nil {
		logger.Warn("ledger: fetch rows failed", zap.String("bookingRef", bookingRef), zap.Error(err))
		return false
	}

	for i, row := range rows {
		if cell(row, colBookingRef) != bookingRef {
			continue
		}
		if !rowMutable(row) {
			logger.Warn("ledger: row for ref not mutable",
				zap.String("bookingRef", bookingRef), zap.String("status", cell(row, colStatus)))
			return false
		}

		existing := cell(row, colNotes)
		updated := "Rescheduled. " + notes
		if strings.Contains(existing, "Rescheduled") {
			updated = existing + ". Rescheduled again: " + notes
		}

		updateRange := fmt.Sprintf("E%d:K%d", i+1, i+1)
		values := [][]interface{}{{
			s.formatLedgerLocalISO(newStartISO), s.formatLedgerLocalISO(newEndISO),
			cell(row, colName), cell(row, colContact), cell(row, colSource),
			updated, models.StatusRescheduled,
		}}
		if err := s.Ledger.UpdateRange(ctx, updateRange, values); err != nil {
			logger.Warn("ledger: reschedule update failed", zap.String("bookingRef", bookingRef), zap.Error(err))
			return false
		}
		return true
	}

	logger.Warn("ledger: no row for ref", zap.String("bookingRef", bookingRef))
	return false
}
