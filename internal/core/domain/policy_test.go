package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateVote(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	menu := &Menu{ID: uuid.New(), Date: day}

	tests := []struct {
		name        string
		menu        *Menu
		attemptedAt time.Time
		hasVoted    bool
		wantErr     error
	}{
		{
			name:        "accepts just before cutoff",
			menu:        menu,
			attemptedAt: day.Add(10*time.Hour + 59*time.Minute + 59*time.Second),
		},
		{
			name:        "rejects at cutoff",
			menu:        menu,
			attemptedAt: day.Add(11 * time.Hour),
			wantErr:     ErrVotingClosed,
		},
		{
			name:        "rejects after cutoff",
			menu:        menu,
			attemptedAt: day.Add(15 * time.Hour),
			wantErr:     ErrVotingClosed,
		},
		{
			name:        "rejects yesterday's menu regardless of time",
			menu:        &Menu{ID: uuid.New(), Date: day.AddDate(0, 0, -1)},
			attemptedAt: day.Add(9 * time.Hour),
			wantErr:     ErrStaleMenu,
		},
		{
			name:        "rejects tomorrow's menu",
			menu:        &Menu{ID: uuid.New(), Date: day.AddDate(0, 0, 1)},
			attemptedAt: day.Add(9 * time.Hour),
			wantErr:     ErrStaleMenu,
		},
		{
			name:        "cutoff wins over stale menu",
			menu:        &Menu{ID: uuid.New(), Date: day.AddDate(0, 0, -1)},
			attemptedAt: day.Add(12 * time.Hour),
			wantErr:     ErrVotingClosed,
		},
		{
			name:        "rejects second vote of the day",
			menu:        menu,
			attemptedAt: day.Add(10 * time.Hour),
			hasVoted:    true,
			wantErr:     ErrAlreadyVoted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVote(tt.menu, tt.attemptedAt, tt.hasVoted)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSameDay(t *testing.T) {
	// A UTC-midnight date (as scanned from a DATE column) matches a local
	// timestamp on the same calendar day.
	loc := time.FixedZone("UTC+3", 3*60*60)
	stored := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	local := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	assert.True(t, SameDay(stored, local))
	assert.False(t, SameDay(stored, local.AddDate(0, 0, 1)))
}
