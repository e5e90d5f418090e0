package store

import "trainingapi/internal/entity"

var defaultFilms = []entity.Film{
	{Title: "The Shawshank Redemption", Year: 1994, Director: "Frank Darabont", Genres: []string{"Drama"}, Runtime: 142, Rating: 9.3},
	{Title: "The Godfather", Year: 1972, Director: "Francis Ford Coppola", Genres: []string{"Crime", "Drama"}, Runtime: 175, Rating: 9.2},
	{Title: "The Dark Knight", Year: 2008, Director: "Christopher Nolan", Genres: []string{"Action", "Crime", "Drama"}, Runtime: 152, Rating: 9.0},
	{Title: "12 Angry Men", Year: 1957, Director: "Sidney Lumet", Genres: []string{"Crime", "Drama"}, Runtime: 96, Rating: 9.0},
	{Title: "Schindler's List", Year: 1993, Director: "Steven Spielberg", Genres: []string{"Biography", "Drama", "History"}, Runtime: 195, Rating: 9.0},
	{Title: "Pulp Fiction", Year: 1994, Director: "Quentin Tarantino", Genres: []string{"Crime", "Drama"}, Runtime: 154, Rating: 8.9},
	{Title: "Spirited Away", Year: 2001, Director: "Hayao Miyazaki", Genres: []string{"Animation", "Adventure", "Family"}, Runtime: 125, Rating: 8.6},
	{Title: "Seven Samurai", Year: 1954, Director: "Akira Kurosawa", Genres: []string{"Action", "Drama"}, Runtime: 207, Rating: 8.6},
}
