package models

import "strings"

// Status is the user's relationship to a tracked title. Absence from the
// collection is the implicit "untracked" state.
type Status string

const (
	StatusWatching    Status = "watching"
	StatusCompleted   Status = "completed"
	StatusPlanToWatch Status = "plan_to_watch"
	StatusDropped     Status = "dropped"
	// StatusFavorite is a first-class status like the others; a title is
	// either favorited or tracked some other way, not both.
	StatusFavorite Status = "favorite"

	// StatusNone removes the record. Never stored.
	StatusNone Status = "none"
)

// ParseStatus normalizes user input into a Status. An empty string and
// "none" both mean remove; anything unrecognized returns ok=false.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusWatching:
		return StatusWatching, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusPlanToWatch:
		return StatusPlanToWatch, true
	case StatusDropped:
		return StatusDropped, true
	case StatusFavorite:
		return StatusFavorite, true
	case StatusNone, "":
		return StatusNone, true
	default:
		return "", false
	}
}

// TrackingRecord is one tracked title. AddedAt is Unix milliseconds and
// means "last modified": every write restamps it, matching how the stored
// collection has always behaved.
type TrackingRecord struct {
	Anime   Anime  `json:"anime"`
	Status  Status `json:"status"`
	AddedAt int64  `json:"addedAt"`
}

// TrackingCollection maps the stringified catalog id to its record.
// At most one record per id; a new status replaces the old record whole.
type TrackingCollection map[string]TrackingRecord
