package entity

import (
	"fmt"
	"sort"

	"go-healthcare-coordination/internal/domain/snapshot"
	"go-healthcare-coordination/pkg/digest"
)

// DoctorParams carries the inputs needed to register a doctor.
type DoctorParams struct {
	PersonID       int64  `validate:"required"`
	Name           string `validate:"required"`
	Age            int    `validate:"gte=0"`
	Contact        string `validate:"required"`
	Gender         string `validate:"required"`
	DoctorID       int64  `validate:"required"`
	Password       string `validate:"required,min=6"`
	Specialization string `validate:"required"`
}

// Doctor owns ordered collections of patients and appointments. The
// appointments list is the authoritative source for the
// ManageAppointments ordering.
type Doctor struct {
	Person
	credentials

	DoctorID       int64
	Specialization string
	Patients       []*User
	Appointments   []*Appointment
}

func NewDoctor(params DoctorParams, d digest.Digester) (*Doctor, error) {
	if err := paramsValidator.Validate(params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidParams, paramsValidator.FieldErrors(err))
	}
	return &Doctor{
		Person: Person{
			ID:      params.PersonID,
			Name:    params.Name,
			Age:     params.Age,
			Contact: params.Contact,
			Gender:  params.Gender,
		},
		credentials:    newCredentials(params.Password, d),
		DoctorID:       params.DoctorID,
		Specialization: params.Specialization,
	}, nil
}

// AddPatient registers a patient with this doctor. The insert is idempotent
// and checked by identity; the first add establishes the mutual link by
// setting the patient's assigned doctor. This is the only path that sets
// AssignedDoctor.
func (d *Doctor) AddPatient(user *User) {
	for _, p := range d.Patients {
		if p == user {
			return
		}
	}
	d.Patients = append(d.Patients, user)
	user.AssignedDoctor = d
}

// ViewPatientStats returns the patient's full measurement history.
func (d *Doctor) ViewPatientStats(user *User) []snapshot.HealthStats {
	return user.ViewHealthStatus()
}

// ManageAppointments projects this doctor's appointments sorted ascending
// by time. The sort is stable; the underlying collection is not reordered.
func (d *Doctor) ManageAppointments() []snapshot.AppointmentSummary {
	appointments := make([]*Appointment, len(d.Appointments))
	copy(appointments, d.Appointments)
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].DateTime.Before(appointments[j].DateTime)
	})

	summaries := make([]snapshot.AppointmentSummary, 0, len(appointments))
	for _, a := range appointments {
		summaries = append(summaries, a.summary())
	}
	return summaries
}

// AssignTask hands the assistant a new task, replacing the previous one.
func (d *Doctor) AssignTask(assistant *Assistant, task string) {
	assistant.UpdateTask(task)
}
