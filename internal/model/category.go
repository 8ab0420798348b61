package model

// Category is the type tag of a listing. The wire values are the ones the
// frontend already sends.
type Category string

const (
	CategoryRealEstate Category = "Недвижимость"
	CategoryAuto       Category = "Авто"
	CategoryServices   Category = "Услуги"
)

// CategoryRule lists the fields a listing of one category must carry.
type CategoryRule struct {
	// Label names the category in error messages.
	Label string

	Required []string
}

// CategoryRules is the lookup table from category tag to its rule.
var CategoryRules = map[Category]CategoryRule{
	CategoryRealEstate: {
		Label:    "Real estate",
		Required: []string{"propertyType", "area", "rooms", "price"},
	},
	CategoryAuto: {
		Label:    "Auto",
		Required: []string{"brand", "model", "year", "mileage"},
	},
	CategoryServices: {
		Label:    "Services",
		Required: []string{"serviceType", "experience", "cost"},
	},
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := CategoryRules[c]
	return ok
}
