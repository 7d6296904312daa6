package models

// Location - точка на поверхности Земли в градусах (WGS84)
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
