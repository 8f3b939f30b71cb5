package entities

// Location is a geocoded developer studio. Developer is the join key against
// Game.Developer and is not required to be unique, though in practice the
// catalog carries one row per studio.
type Location struct {
	Developer string  `json:"developer"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName string  `json:"place_name"`
	Address   string  `json:"address"`
}
