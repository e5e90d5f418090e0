package entity

// Film is served exactly as compiled in; handlers never look inside it.
type Film struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Genres   []string `json:"genres"`
	Runtime  int      `json:"runtime"`
	Rating   float64  `json:"rating"`
}
