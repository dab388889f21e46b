package schedule

// Defaults returns the starter wedding-day schedule materialized on first
// load, all entries uncompleted. A fresh slice is returned on every call.
func Defaults() []Item {
	return []Item{
		{ID: 1, Time: "10:00", Title: "Bridal preparation", Location: "Bridal suite", Type: TypePrep, Description: "Hair, makeup and detail shots"},
		{ID: 2, Time: "12:30", Title: "First look", Location: "Hotel garden", Type: TypePortrait},
		{ID: 3, Time: "14:00", Title: "Ceremony", Location: "St. Mary's Church", Type: TypeCeremony},
		{ID: 4, Time: "15:30", Title: "Family portraits", Location: "Church steps", Type: TypePortrait},
		{ID: 5, Time: "17:00", Title: "Reception entrance", Location: "The Grand Ballroom", Type: TypeReception},
		{ID: 6, Time: "20:00", Title: "First dance", Location: "The Grand Ballroom", Type: TypeReception},
	}
}
