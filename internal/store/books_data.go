package store

import "trainingapi/internal/entity"

var defaultBooks = []entity.Book{
	{
		Author:     "Chinua Achebe",
		Country:    "Nigeria",
		Language:   "English",
		Link:       "https://en.wikipedia.org/wiki/Things_Fall_Apart",
		Pages:      209,
		Title:      "Things Fall Apart",
		Year:       1958,
		CopiesSold: 20000000,
	},
	{
		Author:     "Hans Christian Andersen",
		Country:    "Denmark",
		Language:   "Danish",
		Link:       "https://en.wikipedia.org/wiki/Fairy_Tales_Told_for_Children._First_Collection.",
		Pages:      784,
		Title:      "Fairy tales",
		Year:       1836,
		CopiesSold: 5400000,
	},
	{
		Author:     "Dante Alighieri",
		Country:    "Italy",
		Language:   "Italian",
		Link:       "https://en.wikipedia.org/wiki/Divine_Comedy",
		Pages:      928,
		Title:      "The Divine Comedy",
		Year:       1315,
		CopiesSold: 3200000,
	},
	{
		Author:     "Unknown",
		Country:    "Sumer and Akkadian Empire",
		Language:   "Akkadian",
		Link:       "https://en.wikipedia.org/wiki/Epic_of_Gilgamesh",
		Pages:      160,
		Title:      "The Epic Of Gilgamesh",
		Year:       -1700,
		CopiesSold: 810000,
	},
	{
		Author:     "Unknown",
		Country:    "Achaemenid Empire",
		Language:   "Hebrew",
		Link:       "https://en.wikipedia.org/wiki/Book_of_Job",
		Pages:      176,
		Title:      "The Book Of Job",
		Year:       -600,
		CopiesSold: 450000,
	},
	{
		Author:     "Unknown",
		Country:    "India/Iran/Iraq/Egypt/Tajikistan",
		Language:   "Arabic",
		Link:       "https://en.wikipedia.org/wiki/One_Thousand_and_One_Nights",
		Pages:      288,
		Title:      "One Thousand and One Nights",
		Year:       1200,
		CopiesSold: 1900000,
	},
	{
		Author:     "Unknown",
		Country:    "Iceland",
		Language:   "Old Norse",
		Link:       "https://en.wikipedia.org/wiki/Nj%C3%A1ls_saga",
		Pages:      384,
		Title:      "Njál's Saga",
		Year:       1350,
		CopiesSold: 120000,
	},
	{
		Author:     "Jane Austen",
		Country:    "United Kingdom",
		Language:   "English",
		Link:       "https://en.wikipedia.org/wiki/Pride_and_Prejudice",
		Pages:      226,
		Title:      "Pride and Prejudice",
		Year:       1813,
		CopiesSold: 20000000,
	},
	{
		Author:     "Honoré de Balzac",
		Country:    "France",
		Language:   "French",
		Link:       "https://en.wikipedia.org/wiki/Le_P%C3%A8re_Goriot",
		Pages:      443,
		Title:      "Le Père Goriot",
		Year:       1835,
		CopiesSold: 1100000,
	},
	{
		Author:     "Samuel Beckett",
		Country:    "Republic of Ireland",
		Language:   "French, English",
		Link:       "https://en.wikipedia.org/wiki/Molloy_(novel)",
		Pages:      256,
		Title:      "Molloy, Malone Dies, The Unnamable, the trilogy",
		Year:       1952,
		CopiesSold: 300000,
	},
	{
		Author:     "Giovanni Boccaccio",
		Country:    "Italy",
		Language:   "Italian",
		Link:       "https://en.wikipedia.org/wiki/The_Decameron",
		Pages:      1024,
		Title:      "The Decameron",
		Year:       1351,
		CopiesSold: 950000,
	},
	{
		Author:     "Jorge Luis Borges",
		Country:    "Argentina",
		Language:   "Spanish",
		Link:       "https://en.wikipedia.org/wiki/Ficciones",
		Pages:      224,
		Title:      "Ficciones",
		Year:       1965,
		CopiesSold: 700000,
	},
	{
		Author:     "Emily Brontë",
		Country:    "United Kingdom",
		Language:   "English",
		Link:       "https://en.wikipedia.org/wiki/Wuthering_Heights",
		Pages:      342,
		Title:      "Wuthering Heights",
		Year:       1847,
		CopiesSold: 12000000,
	},
	{
		Author:     "Albert Camus",
		Country:    "Algeria, French Empire",
		Language:   "French",
		Link:       "https://en.wikipedia.org/wiki/The_Stranger_(novel)",
		Pages:      185,
		Title:      "The Stranger",
		Year:       1942,
		CopiesSold: 10000000,
	},
}
