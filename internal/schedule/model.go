package schedule

import "fmt"

// StorageKey is the persistence key of the schedule collection.
const StorageKey = "schedule"

// Event types. Closed set.
const (
	TypePrep      = "prep"
	TypeCeremony  = "ceremony"
	TypePortrait  = "portrait"
	TypeReception = "reception"
)

type Item struct {
	ID int `json:"id"`
	// Time is a canonical 24-hour "HH:MM" and round-trips exactly as
	// stored; display formatting is the caller's concern.
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Completed   bool   `json:"completed"`
}

func (i Item) ItemID() int {
	return i.ID
}

// DraftKey is the transient per-item key used while an edit dialog is open.
func DraftKey(id int) string {
	return fmt.Sprintf("schedule-item-%d", id)
}
