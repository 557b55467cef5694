package domain

// Coordinate is a WGS84 point in decimal degrees. Records carry it as a
// *Coordinate: nil means the record is unlocated and takes no part in
// coverage computation. Latitude and longitude are always set together,
// the storage layer never produces a half-filled Coordinate.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
