package schema

// NamedTable represents a reference table keyed by a unique 'name' column
// (catalog.genre, catalog.actor, catalog.language).
type NamedTable struct {
	Table string
	ID    string
	Name  string
}

// Genre is the schema definition for catalog.genre
var Genre = NamedTable{Table: "catalog.genre", ID: "id", Name: "name"}

// Actor is the schema definition for catalog.actor
var Actor = NamedTable{Table: "catalog.actor", ID: "id", Name: "name"}

// Language is the schema definition for catalog.language
var Language = NamedTable{Table: "catalog.language", ID: "id", Name: "name"}

func (t NamedTable) Columns() []string { return []string{t.ID, t.Name} }
