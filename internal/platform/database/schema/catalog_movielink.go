package schema

// MovieLinkTable represents a movie-to-reference association table
type MovieLinkTable struct {
	Table   string
	MovieID string
	RefID   string
}

// MovieGenre is the schema definition for catalog.moviegenre
var MovieGenre = MovieLinkTable{Table: "catalog.moviegenre", MovieID: "movieid", RefID: "genreid"}

// MovieActor is the schema definition for catalog.movieactor
var MovieActor = MovieLinkTable{Table: "catalog.movieactor", MovieID: "movieid", RefID: "actorid"}

// MovieLanguage is the schema definition for catalog.movielanguage
var MovieLanguage = MovieLinkTable{Table: "catalog.movielanguage", MovieID: "movieid", RefID: "languageid"}
