package entities

// City is a location on the world map. Coordinates are normalized to
// [0,100] on both axes.
type City struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}
