package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRecord_UsagePercent(t *testing.T) {
	tests := []struct {
		name   string
		record UserRecord
		want   int
	}{
		{name: "no limit", record: UserRecord{ScansUsed: 10}, want: 0},
		{name: "nothing used", record: UserRecord{ScanLimit: 50}, want: 0},
		{name: "half", record: UserRecord{ScansUsed: 25, ScanLimit: 50}, want: 50},
		{name: "rounds down", record: UserRecord{ScansUsed: 1, ScanLimit: 3}, want: 33},
		{name: "exactly full", record: UserRecord{ScansUsed: 50, ScanLimit: 50}, want: 100},
		{name: "over quota clamps", record: UserRecord{ScansUsed: 80, ScanLimit: 50}, want: 100},
		{name: "negative usage clamps", record: UserRecord{ScansUsed: -5, ScanLimit: 50}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.UsagePercent())
		})
	}
}

func TestUserRecord_Level(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantNext  int
	}{
		{xp: -10, wantLevel: 1, wantNext: 110},
		{xp: 0, wantLevel: 1, wantNext: 100},
		{xp: 99, wantLevel: 1, wantNext: 1},
		{xp: 100, wantLevel: 2, wantNext: 200},
		{xp: 450, wantLevel: 3, wantNext: 150},
		{xp: 600, wantLevel: 4, wantNext: 400},
		{xp: 1000, wantLevel: 5, wantNext: 0},
		{xp: 5000, wantLevel: 5, wantNext: 0},
	}

	for _, tt := range tests {
		record := UserRecord{XP: tt.xp}
		assert.Equal(t, tt.wantLevel, record.Level(), "level for %d XP", tt.xp)
		assert.Equal(t, tt.wantNext, record.NextLevelXP(), "next level for %d XP", tt.xp)
	}
}
