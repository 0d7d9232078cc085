package schema

// CountryTable represents the 'catalog.country' table
type CountryTable struct {
	Table string
	ID    string
	Code  string
	Name  string
}

// Country is the schema definition for catalog.country
var Country = CountryTable{
	Table: "catalog.country",
	ID:    "id",
	Code:  "code",
	Name:  "name",
}

func (t CountryTable) Columns() []string { return []string{t.ID, t.Code, t.Name} }
