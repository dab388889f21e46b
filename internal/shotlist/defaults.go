package shotlist

// Defaults returns the starter shot list materialized on first load, all
// entries uncompleted. A fresh slice is returned on every call.
func Defaults() []Item {
	return []Item{
		{ID: 1, Title: "Dress hanging in window light", Category: CategoryPreparation, Description: "Detail of the dress before the bride gets ready"},
		{ID: 2, Title: "Rings on the invitation suite", Category: CategoryDetails},
		{ID: 3, Title: "First look", Category: CategoryPortrait, Description: "Groom's reaction, shot over the bride's shoulder"},
		{ID: 4, Title: "Processional", Category: CategoryCeremony},
		{ID: 5, Title: "Ring exchange close-up", Category: CategoryCeremony},
		{ID: 6, Title: "Couple at golden hour", Category: CategoryPortrait},
		{ID: 7, Title: "Reception room before guests enter", Category: CategoryVenue},
		{ID: 8, Title: "First dance", Category: CategoryReception},
		{ID: 9, Title: "Cake cutting", Category: CategoryReception},
	}
}
