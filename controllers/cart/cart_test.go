package cartControllers

import (
	"testing"
)

func TestCartUpsertClause(t *testing.T) {
	onConflict := cartUpsertClause(3)

	if len(onConflict.Columns) != 2 {
		t.Fatalf("conflict columns = %d, want 2", len(onConflict.Columns))
	}
	if onConflict.Columns[0].Name != "cart_id" || onConflict.Columns[1].Name != "product_id" {
		t.Errorf("conflict columns = %q, %q; want cart_id, product_id",
			onConflict.Columns[0].Name, onConflict.Columns[1].Name)
	}

	// Only quantity may change on conflict. An added_at assignment here would
	// reshuffle the added_at-ordered cart view on every increment.
	for _, a := range onConflict.DoUpdates {
		if a.Column.Name != "quantity" {
			t.Errorf("conflict assignment touches %q, want quantity only", a.Column.Name)
		}
	}
	if len(onConflict.DoUpdates) != 1 {
		t.Errorf("conflict assignments = %d, want 1", len(onConflict.DoUpdates))
	}
}
