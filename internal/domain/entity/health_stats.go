package entity

import (
	"time"

	"go-healthcare-coordination/internal/domain/snapshot"
)

// HealthStats is a single measurement snapshot owned by one patient. The
// timestamp is caller-supplied and not validated.
type HealthStats struct {
	BloodPressure float64
	SugarLevel    float64
	Weight        float64
	Timestamp     time.Time
	IsManual      bool
}

// NewHealthStats creates a measurement. Provenance defaults to manual.
func NewHealthStats(bloodPressure, sugarLevel, weight float64, timestamp time.Time) *HealthStats {
	return &HealthStats{
		BloodPressure: bloodPressure,
		SugarLevel:    sugarLevel,
		Weight:        weight,
		Timestamp:     timestamp,
		IsManual:      true,
	}
}

// RecordManual marks the measurement as entered by hand.
func (h *HealthStats) RecordManual() {
	h.IsManual = true
}

// RecordAutomatic marks the measurement as device-recorded.
func (h *HealthStats) RecordAutomatic() {
	h.IsManual = false
}

// ViewStats returns a fully serializable view of the measurement.
func (h *HealthStats) ViewStats() snapshot.HealthStats {
	return snapshot.HealthStats{
		BloodPressure: h.BloodPressure,
		SugarLevel:    h.SugarLevel,
		Weight:        h.Weight,
		DateTime:      h.Timestamp.Format(time.RFC3339),
		IsManual:      h.IsManual,
	}
}
