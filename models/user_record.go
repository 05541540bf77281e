package models

import "time"

// levelThresholds holds the minimal XP required for each level, starting
// with level 1.
var levelThresholds = []int{0, 100, 300, 600, 1000}

// UserRecord is the administrative record of a user returned by the sync
// endpoint. The client caches the latest copy locally.
type UserRecord struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Plan      string    `json:"plan"`
	ScansUsed int       `json:"scans_used"`
	ScanLimit int       `json:"scan_limit"`
	XP        int       `json:"xp"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsagePercent returns the share of the scan quota already consumed,
// clamped to the 0..100 range. A zero limit reports 0.
func (r UserRecord) UsagePercent() int {
	if r.ScanLimit <= 0 || r.ScansUsed <= 0 {
		return 0
	}
	if r.ScansUsed >= r.ScanLimit {
		return 100
	}
	return r.ScansUsed * 100 / r.ScanLimit
}

// Level maps the accumulated XP onto the level thresholds. Levels start at 1.
func (r UserRecord) Level() int {
	level := 0
	for _, threshold := range levelThresholds {
		if r.XP < threshold {
			break
		}
		level++
	}
	if level == 0 {
		return 1
	}
	return level
}

// NextLevelXP returns the XP needed to reach the next level, or 0 when the
// top level is reached.
func (r UserRecord) NextLevelXP() int {
	level := r.Level()
	if level >= len(levelThresholds) {
		return 0
	}
	return levelThresholds[level] - r.XP
}
