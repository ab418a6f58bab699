package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leadgrid/leadgrid/internal/lock"
	"github.com/leadgrid/leadgrid/internal/sheet"
)

// ErrNoIdentity occurs when a payload carries neither a usable phone number
// nor a platform user id. Nothing is written.
var ErrNoIdentity = errors.New("no usable identity in payload")

// Service merges payloads into the lead sheet: one row per identity, matched
// by normalized phone with the platform user id as the weaker fallback
// channel.
type Service struct {
	store       sheet.Store
	coord       lock.Coordinator
	fields      FieldMap
	lockTimeout time.Duration
	logger      *slog.Logger
}

// NewService creates an upsert service over the given sheet store and write
// coordinator.
func NewService(store sheet.Store, coord lock.Coordinator, logger *slog.Logger, lockTimeout time.Duration) *Service {
	return &Service{
		store:       store,
		coord:       coord,
		fields:      DefaultFieldMap(),
		lockTimeout: lockTimeout,
		logger:      logger,
	}
}

// Upsert resolves the payload's identity and either updates the matching row
// in place or appends a new one. The whole read-resolve-write sequence runs
// under the write lock; identity validation happens before acquisition so a
// rejected payload never holds it.
func (s *Service) Upsert(ctx context.Context, payload Payload) (Result, error) {
	phone := s.extractPhone(payload)
	tgUserID := s.extractUserID(payload)

	if phone == "" && tgUserID == "" {
		return Result{}, ErrNoIdentity
	}

	if err := s.coord.Acquire(ctx, s.lockTimeout); err != nil {
		return Result{}, err
	}
	defer s.coord.Release(ctx)

	cols, headers, appended, err := ResolveColumns(ctx, s.store, s.fields)
	if err != nil {
		return Result{}, err
	}
	if appended > 0 {
		s.logger.Info("sheet schema extended", slog.Int("columns_appended", appended))
	}

	rows, err := s.store.Rows(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read rows: %w", err)
	}

	rowIdx := FindRow(rows, phone, tgUserID, cols[FieldPhoneNumber], cols[FieldTgUserID])
	now := time.Now().UTC().Format(time.RFC3339)

	var action string
	if rowIdx != NotFound {
		action = ActionUpdated
		if err := s.update(ctx, payload, cols, rowIdx, phone, now); err != nil {
			return Result{}, err
		}
	} else {
		action = ActionCreated
		rowIdx, err = s.create(ctx, payload, cols, headers, phone, now)
		if err != nil {
			return Result{}, err
		}
	}

	s.logger.Info("lead upserted",
		slog.String("action", action),
		slog.String("phone", phone),
		slog.Int("row", rowIdx),
	)

	city, _ := payload.First(s.fields.Aliases(FieldCity))
	clientName, _ := payload.First(s.fields.Aliases(FieldClientName))

	return Result{
		Action:    action,
		Phone:     phone,
		Extracted: Extracted{City: city, ClientName: clientName},
		Columns: ExtractedColumns{
			City:       cols[FieldCity],
			ClientName: cols[FieldClientName],
		},
	}, nil
}

// extractPhone scans the phone aliases for the first value that normalizes to
// something non-empty. An alias present with an empty or null value falls
// through to the next one, so phone="" alongside a populated mobile still
// yields an identity.
func (s *Service) extractPhone(payload Payload) string {
	for _, alias := range s.fields.Aliases(FieldPhoneNumber) {
		if v, ok := payload[alias]; ok {
			if phone := NormalizePhone(v); phone != "" {
				return phone
			}
		}
	}
	return ""
}

// extractUserID scans the user-id aliases the same way.
func (s *Service) extractUserID(payload Payload) string {
	for _, alias := range s.fields.Aliases(FieldTgUserID) {
		if v, ok := payload[alias]; ok {
			if id := CellValue(v); id != "" {
				return id
			}
		}
	}
	return ""
}

// update overwrites cells for every field the payload carries, leaving the
// rest untouched so a partial payload never erases stored values. The phone
// cell is written only when this payload supplied a non-empty phone; that is
// how a row created from a user id alone later acquires its number.
func (s *Service) update(ctx context.Context, payload Payload, cols Columns, row int, phone, now string) error {
	for _, f := range s.fields {
		var value string
		switch f.Name {
		case FieldPhoneNumber:
			if phone == "" {
				continue
			}
			value = phone
		case FieldTimestamp:
			value = now
		default:
			v, ok := payload.First(f.Aliases)
			if !ok || v == nil {
				continue
			}
			value = CellValue(v)
		}
		if err := s.store.UpdateCell(ctx, row, cols[f.Name], value); err != nil {
			return fmt.Errorf("update %s: %w", f.Name, err)
		}
	}
	return nil
}

// create appends a full row, every cell defaulted to empty and filled from
// the payload where an alias is present, returning the new row's index. The
// append and the phone cell's text-format reapplication are one logical unit.
func (s *Service) create(ctx context.Context, payload Payload, cols Columns, headers []string, phone, now string) (int, error) {
	row := make([]string, len(headers))
	for _, f := range s.fields {
		switch f.Name {
		case FieldPhoneNumber:
			row[cols[f.Name]] = phone
		case FieldTimestamp:
			row[cols[f.Name]] = now
		default:
			if v, ok := payload.First(f.Aliases); ok {
				row[cols[f.Name]] = CellValue(v)
			}
		}
	}

	idx, err := s.store.AppendRow(ctx, row)
	if err != nil {
		return NotFound, fmt.Errorf("append row: %w", err)
	}
	phoneCol := cols[FieldPhoneNumber]
	if err := s.store.SetColumnTextFormat(ctx, phoneCol); err != nil {
		return NotFound, fmt.Errorf("format phone cell: %w", err)
	}
	if err := s.store.UpdateCell(ctx, idx, phoneCol, phone); err != nil {
		return NotFound, fmt.Errorf("set phone cell: %w", err)
	}
	return idx, nil
}
