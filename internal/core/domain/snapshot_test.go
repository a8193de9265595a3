package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/transit/internal/core/domain"
)

func TestSnapshot_MarkersStale(t *testing.T) {
	date := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	bound := 90 * 24 * time.Hour

	tests := []struct {
		name        string
		markersAsOf time.Time
		bound       time.Duration
		expected    bool
	}{
		{
			name:        "fresh markers within the bound",
			markersAsOf: date.AddDate(0, -1, 0),
			bound:       bound,
			expected:    false,
		},
		{
			name:        "markers older than the bound",
			markersAsOf: date.AddDate(0, -4, 0),
			bound:       bound,
			expected:    true,
		},
		{
			name:        "unknown origin is never flagged",
			markersAsOf: time.Time{},
			bound:       bound,
			expected:    false,
		},
		{
			name:        "disabled bound is never flagged",
			markersAsOf: date.AddDate(-1, 0, 0),
			bound:       0,
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := domain.Snapshot{Date: date, MarkersAsOf: tt.markersAsOf}
			assert.Equal(t, tt.expected, snap.MarkersStale(tt.bound))
		})
	}
}
