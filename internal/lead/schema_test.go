package lead

import (
	"context"
	"testing"

	"github.com/leadgrid/leadgrid/internal/sheet"
)

func TestResolveColumnsCreatesMissingHeaders(t *testing.T) {
	store := sheet.NewMemoryStore()
	fields := DefaultFieldMap()
	ctx := context.Background()

	cols, headers, appended, err := ResolveColumns(ctx, store, fields)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if appended != len(fields) {
		t.Fatalf("expected %d appended columns on empty sheet, got %d", len(fields), appended)
	}
	if len(headers) != len(fields) {
		t.Fatalf("expected %d headers, got %d", len(fields), len(headers))
	}
	for i, f := range fields {
		if cols[f.Name] != i {
			t.Errorf("field %s resolved to column %d, want %d", f.Name, cols[f.Name], i)
		}
	}
}

func TestResolveColumnsIsStableAcrossCalls(t *testing.T) {
	store := sheet.NewMemoryStore()
	ctx := context.Background()

	first, _, _, err := ResolveColumns(ctx, store, DefaultFieldMap())
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, headers, appended, err := ResolveColumns(ctx, store, DefaultFieldMap())
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if appended != 0 {
		t.Fatalf("expected no duplicate columns, appended %d", appended)
	}
	if len(headers) != len(DefaultFieldMap()) {
		t.Fatalf("header count changed: %d", len(headers))
	}
	for name, col := range first {
		if second[name] != col {
			t.Errorf("field %s moved from column %d to %d", name, col, second[name])
		}
	}
}

func TestResolveColumnsKeepsExistingPositions(t *testing.T) {
	store := sheet.NewMemoryStore()
	ctx := context.Background()

	// Pre-existing sheet with a foreign column in the middle.
	for _, h := range []string{"brand", "comment", "phone_number"} {
		if _, err := store.AppendHeader(ctx, h); err != nil {
			t.Fatalf("seed header: %v", err)
		}
	}

	cols, headers, _, err := ResolveColumns(ctx, store, DefaultFieldMap())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cols[FieldBrand] != 0 || cols[FieldPhoneNumber] != 2 {
		t.Fatalf("existing columns moved: brand=%d phone=%d", cols[FieldBrand], cols[FieldPhoneNumber])
	}
	if headers[1] != "comment" {
		t.Fatalf("foreign column displaced: %v", headers)
	}
	// Every new canonical field lands after the pre-existing ones.
	for _, f := range DefaultFieldMap() {
		if f.Name == FieldBrand || f.Name == FieldPhoneNumber {
			continue
		}
		if cols[f.Name] < 3 {
			t.Errorf("field %s inserted at %d instead of appended", f.Name, cols[f.Name])
		}
	}
}

func TestResolveColumnsMarksPhoneColumnText(t *testing.T) {
	store := sheet.NewMemoryStore()
	cols, _, _, err := ResolveColumns(context.Background(), store, DefaultFieldMap())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, col := range store.TextColumns() {
		if col == cols[FieldPhoneNumber] {
			return
		}
	}
	t.Fatalf("phone column %d not text-formatted", cols[FieldPhoneNumber])
}
