package configdoc

// PhotoPackage is the closed set of bookable packages. The strings double as
// display labels and persisted values.
type PhotoPackage string

const (
	PackagePro     PhotoPackage = "Pro Package - $250"
	PackageProPlus PhotoPackage = "Pro+ Package - $500"
	PackageProXL   PhotoPackage = "ProXL Package - $750"
)

// PackageDetails is immutable reference data attached to a package. It is
// not user-editable.
type PackageDetails struct {
	Name     PhotoPackage `json:"name"`
	Price    int          `json:"price"`
	Duration int          `json:"duration"` // hours of coverage
	Features []string     `json:"features"`
}

var packageDetails = map[PhotoPackage]PackageDetails{
	PackagePro: {
		Name:     PackagePro,
		Price:    250,
		Duration: 2,
		Features: []string{
			"2 hours of event coverage",
			"100 professionally edited high-resolution photos",
			"Access to an online photo gallery for easy viewing and sharing",
		},
	},
	PackageProPlus: {
		Name:     PackageProPlus,
		Price:    500,
		Duration: 4,
		Features: []string{
			"4 hours of event coverage",
			"250 professionally edited high-resolution photos",
			"Access to an online photo gallery",
			"Includes a USB drive with all edited photos",
		},
	},
	PackageProXL: {
		Name:     PackageProXL,
		Price:    750,
		Duration: 8,
		Features: []string{
			"8 hours of event coverage",
			"500 professionally edited high-resolution photos",
			"Online photo gallery access",
			"USB drive with all photos",
			"Custom photobook featuring event highlights",
		},
	},
}

func (p PhotoPackage) Valid() bool {
	_, ok := packageDetails[p]
	return ok
}

// Details returns the fixed reference data for a package.
func (p PhotoPackage) Details() (PackageDetails, bool) {
	details, ok := packageDetails[p]
	return details, ok
}

// Packages lists all bookable packages, cheapest first.
func Packages() []PackageDetails {
	return []PackageDetails{
		packageDetails[PackagePro],
		packageDetails[PackageProPlus],
		packageDetails[PackageProXL],
	}
}
