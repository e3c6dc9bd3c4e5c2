package neo_api

// NASA NeoWs API response types. Numeric approach fields arrive as strings
// and are parsed upstream.

type FeedResponse struct {
	ElementCount     int                    `json:"element_count"`
	NearEarthObjects map[string][]NeoObject `json:"near_earth_objects"`
}

type NeoObject struct {
	ID                             string              `json:"id"`
	Name                           string              `json:"name"`
	EstimatedDiameter              EstimatedDiameter   `json:"estimated_diameter"`
	IsPotentiallyHazardousAsteroid bool                `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData              []CloseApproachData `json:"close_approach_data"`
}

type EstimatedDiameter struct {
	Meters DiameterRange `json:"meters"`
}

type DiameterRange struct {
	EstimatedDiameterMin float64 `json:"estimated_diameter_min"`
	EstimatedDiameterMax float64 `json:"estimated_diameter_max"`
}

type CloseApproachData struct {
	CloseApproachDate string           `json:"close_approach_date"`
	RelativeVelocity  RelativeVelocity `json:"relative_velocity"`
	MissDistance      MissDistance     `json:"miss_distance"`
}

type RelativeVelocity struct {
	KilometersPerHour string `json:"kilometers_per_hour"`
}

type MissDistance struct {
	Kilometers string `json:"kilometers"`
}
