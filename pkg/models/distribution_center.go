package models

// DistributionCenter is a row from distribution_centers.csv. Latitude and
// longitude stay as raw strings and are rendered verbatim; the service never
// does coordinate math.
type DistributionCenter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
