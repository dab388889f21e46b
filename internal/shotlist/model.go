package shotlist

// StorageKey is the persistence key of the shot list collection.
const StorageKey = "photoProShotList"

// Categories a shot can belong to. Closed set.
const (
	CategoryPreparation = "preparation"
	CategoryCeremony    = "ceremony"
	CategoryPortrait    = "portrait"
	CategoryReception   = "reception"
	CategoryDetails     = "details"
	CategoryVenue       = "venue"
)

// ImagePosition is the vertical crop anchor of a shot image, both axes in
// percent.
type ImagePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
	// ImagePath is an asset reference, empty when no image is attached.
	ImagePath     string         `json:"imagePath"`
	ImagePosition *ImagePosition `json:"imagePosition,omitempty"`
}

func (i Item) ItemID() int {
	return i.ID
}
