package domain

// Planet Model
type Planet struct {
	PlanetID   uint    `gorm:"column:planet_id;primaryKey" json:"planet_id"` // Primary key
	PlanetName string  `json:"planet_name"`                                  // Planet name
	PlanetType string  `json:"planet_type"`                                  // Planet classification
	HomeStar   string  `json:"home_star"`                                    // Star the planet orbits
	Mass       float64 `json:"mass"`                                         // Mass, unit not enforced
	Radius     float64 `json:"radius"`                                       // Radius, unit not enforced
	Distance   float64 `json:"distance"`                                     // Distance from home star, unit not enforced
}

// TableName pins the table name to "planets"
func (Planet) TableName() string {
	return "planets"
}
