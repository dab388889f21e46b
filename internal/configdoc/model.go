package configdoc

// StorageKey is the persistence key of the configuration document.
const StorageKey = "photoProConfig"

type ClientInfo struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	AvatarURL string `json:"avatarUrl"`
}

type WeddingDetails struct {
	// Date is an ISO calendar date, Time a canonical 24-hour "HH:MM".
	Date    string       `json:"date"`
	Time    string       `json:"time" binding:"omitempty,hhmm"`
	Package PhotoPackage `json:"package" binding:"omitempty,photopackage"`
}

type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Venues struct {
	Ceremony  Venue `json:"ceremony"`
	Reception Venue `json:"reception"`
}

type PhotographyPreferences struct {
	Style          string `json:"style"`
	PostProcessing string `json:"postProcessing"`
}

type GroupShot struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

func (g GroupShot) ItemID() int {
	return g.ID
}

// Document is the single root aggregate holding client, wedding, venue and
// preference data. Every edit replaces the whole persisted document.
type Document struct {
	ClientInfo             ClientInfo             `json:"clientInfo"`
	WeddingDetails         WeddingDetails         `json:"weddingDetails"`
	Venues                 Venues                 `json:"venues"`
	PhotographyPreferences PhotographyPreferences `json:"photographyPreferences"`
	GroupShots             []GroupShot            `json:"groupShots"`
}
