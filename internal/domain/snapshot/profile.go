package snapshot

// Profile is the view of the five shared role attributes. Role-specific
// attributes never appear here.
type Profile struct {
	PersonID int64  `json:"person_id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Contact  string `json:"contact"`
	Gender   string `json:"gender"`
}

// HealthStats is the serializable view of one measurement. DateTime is
// rendered as an RFC 3339 string.
type HealthStats struct {
	BloodPressure float64 `json:"blood_pressure"`
	SugarLevel    float64 `json:"sugar_level"`
	Weight        float64 `json:"weight"`
	DateTime      string  `json:"date_time"`
	IsManual      bool    `json:"is_manual"`
}
