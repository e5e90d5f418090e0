package book

import "trainingapi/internal/entity"

const (
	featuredID        = 1000
	secretHeader      = "x-secret"
	secretHeaderValue = "wearegw"
)

// featuredBook is served for id 1000. It is not part of the collection and
// lookups for that id never reach the repository.
var featuredBook = entity.IndexedBook{
	ID: featuredID,
	Book: entity.Book{
		Author:     "Dan Curtis",
		Country:    "United Kingdom",
		Language:   "English",
		Link:       "https://www.amazon.co.uk/Practical-Oracle-JET-Developing-Applications/dp/1484243455",
		Pages:      255,
		Title:      "Practical Oracle JET: Developing Enterprise Applications in JavaScript",
		Year:       2019,
		CopiesSold: 15,
	},
}
