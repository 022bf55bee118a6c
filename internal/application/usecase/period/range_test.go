package period

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/jinofin/backend/internal/domain/error"
)

func TestMonthKey(t *testing.T) {
	got := MonthKey(time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC))
	if got != "2024-03" {
		t.Errorf("expected 2024-03, got %s", got)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name     string
		monthKey string
		start    time.Time
		end      time.Time
	}{
		{
			name:     "thirty one day month",
			monthKey: "2024-03",
			start:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, time.March, 31, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "leap february",
			monthKey: "2024-02",
			start:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "non leap february",
			monthKey: "2023-02",
			start:    time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2023, time.February, 28, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:     "december rolls into next year",
			monthKey: "2023-12",
			start:    time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2023, time.December, 31, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthRange(tt.monthKey, time.UTC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Start.Equal(tt.start) {
				t.Errorf("expected start %v, got %v", tt.start, got.Start)
			}
			if !got.End.Equal(tt.end) {
				t.Errorf("expected end %v, got %v", tt.end, got.End)
			}
		})
	}
}

func TestMonthRange_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "2024", "2024-13", "March 2024", "2024/03"} {
		t.Run(key, func(t *testing.T) {
			_, err := MonthRange(key, time.UTC)
			if !errors.Is(err, domainerror.ErrInvalidMonthKey) {
				t.Errorf("expected ErrInvalidMonthKey, got %v", err)
			}
		})
	}
}

func TestTrailingMonths(t *testing.T) {
	ref := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)

	got, err := TrailingMonths(6, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC)

	if !got.Start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, got.Start)
	}
	if !got.End.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, got.End)
	}
}

func TestTrailingMonths_InvalidWindow(t *testing.T) {
	_, err := TrailingMonths(0, time.Now())
	if !errors.Is(err, domainerror.ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow, got %v", err)
	}
}
