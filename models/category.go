package models

// Category is one of the entity groups counted by the process summary.
type Category string

const (
	CategoryCustomers    Category = "customers"
	CategoryDestinations Category = "destinations"
	CategoryReferences   Category = "references"
	CategoryItems        Category = "items"
)

// Categories lists every category in the order the summary shows them.
var Categories = []Category{
	CategoryCustomers,
	CategoryDestinations,
	CategoryReferences,
	CategoryItems,
}

// Confirmable reports whether the category has confirmation endpoints.
// Customers and items are counted by the summary but cannot be listed,
// confirmed or dismissed yet.
func (c Category) Confirmable() bool {
	return c == CategoryDestinations || c == CategoryReferences
}

// Label returns the Italian display name used by the console.
func (c Category) Label() string {
	switch c {
	case CategoryCustomers:
		return "Clienti"
	case CategoryDestinations:
		return "Destinazioni"
	case CategoryReferences:
		return "Contatti"
	case CategoryItems:
		return "Mezzi"
	default:
		return string(c)
	}
}
