package csvimport

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/jinofin/backend/internal/domain/entity"
)

func TestNormalizeRows(t *testing.T) {
	known := []string{"Food", "Transport"}

	t.Run("valid expense row", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"type": "expense", "amount": "12,50", "category": "Food", "date": "2024-03-15", "note": "lunch"},
		}, known, time.UTC)

		if len(result.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(result.Rows))
		}
		row := result.Rows[0]
		if !row.Valid {
			t.Error("expected row to be valid")
		}
		if row.Type != entity.TransactionTypeExpense {
			t.Errorf("expected expense, got %s", row.Type)
		}
		if row.Amount != 12.5 {
			t.Errorf("expected amount 12.5, got %v", row.Amount)
		}
		if row.Date == nil || !row.Date.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date 2024-03-15, got %v", row.Date)
		}
		if row.Note != "lunch" {
			t.Errorf("expected note lunch, got %q", row.Note)
		}
		if len(result.NewCategories) != 0 {
			t.Errorf("expected no new categories, got %v", result.NewCategories)
		}
	})

	t.Run("mixed case headers resolve", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"Type": "income", "Amount": "3000", "Category": "Salary", "Date": "2024-03-01", "Note": ""},
		}, known, time.UTC)

		row := result.Rows[0]
		if !row.Valid {
			t.Error("expected row to be valid")
		}
		if row.Type != entity.TransactionTypeIncome {
			t.Errorf("expected income, got %s", row.Type)
		}
		if row.Amount != 3000 {
			t.Errorf("expected amount 3000, got %v", row.Amount)
		}
	})

	t.Run("unparseable amount keeps row with NaN", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"type": "expense", "amount": "abc", "category": "Food", "date": "2024-03-15"},
		}, known, time.UTC)

		row := result.Rows[0]
		if row.Valid {
			t.Error("expected row to be invalid")
		}
		if !math.IsNaN(row.Amount) {
			t.Errorf("expected NaN amount, got %v", row.Amount)
		}
	})

	t.Run("unparseable date keeps row invalid", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"type": "expense", "amount": "10", "category": "Food", "date": "sometime in March"},
		}, known, time.UTC)

		row := result.Rows[0]
		if row.Valid {
			t.Error("expected row to be invalid")
		}
		if row.Date != nil {
			t.Errorf("expected nil date, got %v", row.Date)
		}
		if len(result.Rows) != 1 {
			t.Error("expected invalid row to be retained for preview")
		}
	})

	t.Run("zero amount is invalid", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"type": "expense", "amount": "0", "category": "Food", "date": "2024-03-15"},
		}, known, time.UTC)

		if result.Rows[0].Valid {
			t.Error("expected zero-amount row to be invalid")
		}
	})

	t.Run("empty category defaults", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"type": "expense", "amount": "5", "category": "  ", "date": "2024-03-15"},
		}, known, time.UTC)

		if result.Rows[0].Category != DefaultCategory {
			t.Errorf("expected default category, got %q", result.Rows[0].Category)
		}
	})

	t.Run("new categories collected once and sorted", func(t *testing.T) {
		result := NormalizeRows([]map[string]string{
			{"type": "expense", "amount": "5", "category": "Pets", "date": "2024-03-15"},
			{"type": "expense", "amount": "7", "category": "Books", "date": "2024-03-16"},
			{"type": "expense", "amount": "9", "category": "Pets", "date": "2024-03-17"},
			{"type": "expense", "amount": "bad", "category": "Gifts", "date": "2024-03-18"},
		}, known, time.UTC)

		want := []string{"Books", "Gifts", "Pets"}
		if !reflect.DeepEqual(result.NewCategories, want) {
			t.Errorf("expected %v, got %v", want, result.NewCategories)
		}
	})
}

func TestNormalizeRows_DateLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "iso date",
			raw:  "2024-03-15",
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day first slashes",
			raw:  "15/03/2024",
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "iso datetime",
			raw:  "2024-03-15 18:30:00",
			want: time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC),
		},
		{
			name: "dotted day first",
			raw:  "15.03.2024",
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			raw:  "2024-03-15T18:30:00Z",
			want: time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC),
		},
		{
			name: "written month",
			raw:  "15 Mar 2024",
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeRows([]map[string]string{
				{"type": "expense", "amount": "1", "category": "Food", "date": tt.raw},
			}, nil, time.UTC)

			row := result.Rows[0]
			if row.Date == nil {
				t.Fatal("expected date to parse")
			}
			if !row.Date.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, row.Date)
			}
		})
	}
}
