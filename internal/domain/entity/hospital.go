package entity

import (
	"sort"
	"time"

	"go-healthcare-coordination/internal/domain/snapshot"
)

// HospitalManagement aggregates doctors and offers read-side rollups across
// their appointment queues. The rollups are pure projections, computed at
// query time with no caching.
type HospitalManagement struct {
	ID           int64
	Name         string
	ContactInfo  string
	Doctors      []*Doctor
	Appointments []*Appointment
}

func NewHospitalManagement(id int64, name, contactInfo string) *HospitalManagement {
	return &HospitalManagement{
		ID:          id,
		Name:        name,
		ContactInfo: contactInfo,
	}
}

// AddDoctor registers a doctor, idempotent by identity.
func (h *HospitalManagement) AddDoctor(doctor *Doctor) {
	for _, d := range h.Doctors {
		if d == doctor {
			return
		}
	}
	h.Doctors = append(h.Doctors, doctor)
}

// RemoveDoctor drops the doctor from the roster if present.
func (h *HospitalManagement) RemoveDoctor(doctor *Doctor) {
	for i, d := range h.Doctors {
		if d == doctor {
			h.Doctors = append(h.Doctors[:i], h.Doctors[i+1:]...)
			return
		}
	}
}

// ManageDoctors projects id, name and specialization for every doctor.
func (h *HospitalManagement) ManageDoctors() []snapshot.DoctorSummary {
	summaries := make([]snapshot.DoctorSummary, 0, len(h.Doctors))
	for _, d := range h.Doctors {
		summaries = append(summaries, snapshot.DoctorSummary{
			DoctorID:       d.DoctorID,
			Name:           d.Name,
			Specialization: d.Specialization,
		})
	}
	return summaries
}

// ManageAppointments flattens every doctor's appointment queue into one
// sequence sorted ascending by the rendered date-time string. The sort is
// lexical over the RFC 3339 strings, not a temporal comparison; the two
// coincide for timestamps in a uniform offset.
func (h *HospitalManagement) ManageAppointments() []snapshot.HospitalAppointment {
	var rows []snapshot.HospitalAppointment
	for _, d := range h.Doctors {
		for _, a := range d.Appointments {
			var userName string
			if a.User != nil {
				userName = a.User.Name
			}
			rows = append(rows, snapshot.HospitalAppointment{
				AppointmentID: a.ID,
				Doctor:        d.Name,
				User:          userName,
				DateTime:      a.DateTime.Format(time.RFC3339),
				Status:        string(a.Status),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DateTime < rows[j].DateTime
	})
	return rows
}
