package entity

// Enumerated domains of the logistics schema. Value sets are closed and
// preserved exactly; anything outside them is a domain violation.

// Localization marks whether a part is locally sourced.
type Localization string

const (
	LocalizationYes Localization = "yes"
	LocalizationNo  Localization = "no"
)

func (l Localization) Valid() bool {
	return l == LocalizationYes || l == LocalizationNo
}

// PackagingType marks a box or pallet as reusable or disposable.
type PackagingType string

const (
	PackagingReturnable    PackagingType = "returnable"
	PackagingNonReturnable PackagingType = "non-returnable"
)

func (p PackagingType) Valid() bool {
	return p == PackagingReturnable || p == PackagingNonReturnable
}

// ModelCode is a vehicle model code.
type ModelCode string

var modelCodes = map[ModelCode]bool{
	"A01": true, "A08": true, "B02": true, "B04": true, "B06": true, "B16": true,
}

func (c ModelCode) Valid() bool { return modelCodes[c] }

// ModelName is a vehicle model name.
type ModelName string

var modelNames = map[ModelName]bool{
	"Jolion": true, "H3": true, "F7": true, "F7x": true, "Dargo": true, "H7": true,
}

func (n ModelName) Valid() bool { return modelNames[n] }

// WorkshopCode is a production workshop code.
type WorkshopCode string

var workshopCodes = map[WorkshopCode]bool{
	"AS": true, "COMP": true, "PAINT": true, "WELD": true, "STAMP": true, "EN": true,
}

func (c WorkshopCode) Valid() bool { return workshopCodes[c] }

// WorkshopName is a production workshop name.
type WorkshopName string

var workshopNames = map[WorkshopName]bool{
	"Assembly": true, "Component": true, "Painting": true, "Welding": true, "Stamping": true, "Engine": true,
}

func (n WorkshopName) Valid() bool { return workshopNames[n] }
