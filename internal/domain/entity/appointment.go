package entity

import (
	"time"

	"go-healthcare-coordination/internal/domain/snapshot"
)

// AppointmentStatus represents the last-known state of an appointment.
// There is no enforced transition graph: any mutator may be called in any
// order and each sets the status unconditionally.
type AppointmentStatus string

const (
	AppointmentStatusBooked      AppointmentStatus = "booked"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusSOSAlert    AppointmentStatus = "sos-alert"
)

// Appointment links one patient and one doctor at a point in time. Either
// side may be nil; a missing participant is a valid empty case. Both
// participants hold the same appointment in their own collection after
// booking.
type Appointment struct {
	ID       int64
	User     *User
	Doctor   *Doctor
	DateTime time.Time
	Status   AppointmentStatus
}

func NewAppointment(id int64, user *User, doctor *Doctor, dateTime time.Time) *Appointment {
	return &Appointment{
		ID:       id,
		User:     user,
		Doctor:   doctor,
		DateTime: dateTime,
		Status:   AppointmentStatusBooked,
	}
}

// Book sets the status to booked and registers the appointment with both
// participants. Registration is idempotent and checked by identity, not id
// equality: re-booking never duplicates the entry, and a nil participant is
// skipped.
func (a *Appointment) Book() {
	a.Status = AppointmentStatusBooked
	if a.User != nil && !containsAppointment(a.User.Appointments, a) {
		a.User.Appointments = append(a.User.Appointments, a)
	}
	if a.Doctor != nil && !containsAppointment(a.Doctor.Appointments, a) {
		a.Doctor.Appointments = append(a.Doctor.Appointments, a)
	}
}

// Confirm sets the status to confirmed unconditionally.
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Reschedule overwrites the appointment time and sets the status to
// rescheduled. It succeeds silently even on a cancelled appointment.
func (a *Appointment) Reschedule(newTime time.Time) {
	a.DateTime = newTime
	a.Status = AppointmentStatusRescheduled
}

// Cancel sets the status to cancelled. The appointment itself stays in
// every collection that holds it.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// IsCancelled checks if the appointment was cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

func containsAppointment(appointments []*Appointment, target *Appointment) bool {
	for _, a := range appointments {
		if a == target {
			return true
		}
	}
	return false
}

func (a *Appointment) summary() snapshot.AppointmentSummary {
	var userName string
	if a.User != nil {
		userName = a.User.Name
	}
	return snapshot.AppointmentSummary{
		AppointmentID: a.ID,
		User:          userName,
		DateTime:      a.DateTime.Format(time.RFC3339),
		Status:        string(a.Status),
	}
}
