package entity

import (
	"fmt"

	"go-healthcare-coordination/internal/domain/snapshot"
	"go-healthcare-coordination/pkg/digest"
	"go-healthcare-coordination/pkg/notify"
)

// UserParams carries the inputs needed to register a patient.
type UserParams struct {
	PersonID int64  `validate:"required"`
	Name     string `validate:"required"`
	Age      int    `validate:"gte=0"`
	Contact  string `validate:"required"`
	Gender   string `validate:"required"`
	UserID   int64  `validate:"required"`
	Password string `validate:"required,min=6"`
}

// User is a patient: the shared person identity plus owned, ordered
// collections of health stats, reminders and appointments, and a set of SOS
// contacts. AssignedDoctor is a weak reference set only by
// Doctor.AddPatient; the user does not own the doctor.
type User struct {
	Person
	credentials

	UserID         int64
	HealthStats    []*HealthStats
	Reminders      []*Reminder
	Appointments   []*Appointment
	SOSContacts    []notify.Contact
	AssignedDoctor *Doctor
}

// NewUser validates the params and registers a patient. The password is
// digested immediately and the plaintext is not retained. A nil digester
// selects the default.
func NewUser(params UserParams, d digest.Digester) (*User, error) {
	if err := paramsValidator.Validate(params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidParams, paramsValidator.FieldErrors(err))
	}
	return &User{
		Person: Person{
			ID:      params.PersonID,
			Name:    params.Name,
			Age:     params.Age,
			Contact: params.Contact,
			Gender:  params.Gender,
		},
		credentials: newCredentials(params.Password, d),
		UserID:      params.UserID,
	}, nil
}

// AddHealthStats appends a measurement; the history is append-only.
func (u *User) AddHealthStats(stats *HealthStats) {
	u.HealthStats = append(u.HealthStats, stats)
}

// ViewHealthStatus projects every recorded measurement in insertion order.
func (u *User) ViewHealthStatus() []snapshot.HealthStats {
	views := make([]snapshot.HealthStats, 0, len(u.HealthStats))
	for _, stats := range u.HealthStats {
		views = append(views, stats.ViewStats())
	}
	return views
}

// AddReminder appends a medication reminder.
func (u *User) AddReminder(reminder *Reminder) {
	u.Reminders = append(u.Reminders, reminder)
}

// BookAppointment attaches the appointment to this patient and books it,
// registering it with both participants.
func (u *User) BookAppointment(appointment *Appointment) {
	appointment.User = u
	appointment.Book()
}

// AddSOSContact registers an emergency contact for SOS fan-out.
func (u *User) AddSOSContact(name, phone string) {
	u.SOSContacts = append(u.SOSContacts, notify.Contact{Name: name, Phone: phone})
}

// TriggerSOS raises an emergency through the dispatcher. The alert side
// effects fire exactly once, here.
func (u *User) TriggerSOS(dispatcher *Dispatcher, location, healthSnapshot string) *SOS {
	return dispatcher.Trigger(u, location, healthSnapshot)
}
