package schema

// MovieTable represents the 'catalog.movie' table
type MovieTable struct {
	Table     string
	ID        string
	Name      string
	Date      string
	Score     string
	Overview  string
	Status    string
	Budget    string
	Revenue   string
	CountryID string
	CreatedAt string
}

// Movie is the schema definition for catalog.movie
var Movie = MovieTable{
	Table:     "catalog.movie",
	ID:        "id",
	Name:      "name",
	Date:      "date",
	Score:     "score",
	Overview:  "overview",
	Status:    "status",
	Budget:    "budget",
	Revenue:   "revenue",
	CountryID: "countryid",
	CreatedAt: "createdat",
}
