package entity

import (
	"time"

	"github.com/sirupsen/logrus"

	"go-healthcare-coordination/pkg/clock"
	"go-healthcare-coordination/pkg/idgen"
	"go-healthcare-coordination/pkg/notify"
)

// SOS is an emergency record raised by a patient. It back-references the
// patient without owning it.
type SOS struct {
	ID             int64
	User           *User
	Location       string
	HealthSnapshot string
	Timestamp      time.Time

	dispatcher *Dispatcher
}

// Dispatcher owns the collaborators an SOS alert needs: the shared id
// sequence, the clock, the contact notifier and the log.
type Dispatcher struct {
	seq      *idgen.Sequence
	clock    clock.Clock
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewDispatcher(seq *idgen.Sequence, clk clock.Clock, notifier notify.Notifier, log *logrus.Logger) *Dispatcher {
	if seq == nil {
		seq = idgen.NewSequence()
	}
	if clk == nil {
		clk = clock.System{}
	}
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		seq:      seq,
		clock:    clk,
		notifier: notifier,
		log:      log,
	}
}

// Trigger creates an SOS for the patient, stamped with a generated id and
// the current time, and fires its alert once.
func (d *Dispatcher) Trigger(user *User, location, healthSnapshot string) *SOS {
	sos := &SOS{
		ID:             d.seq.Next(),
		User:           user,
		Location:       location,
		HealthSnapshot: healthSnapshot,
		Timestamp:      d.clock.Now(),
		dispatcher:     d,
	}
	sos.SendAlert()
	return sos
}

// SendAlert notifies the assigned doctor and the patient's emergency
// contacts. Both effects are best-effort and silent: a patient without an
// assigned doctor or without contacts is a valid no-op, never an error.
func (s *SOS) SendAlert() {
	s.notifyDoctor()
	s.notifyContacts()
}

// notifyDoctor places an sos-alert appointment directly on the assigned
// doctor's queue. The alert is NOT added to the patient's own appointment
// collection, unlike a normal booking.
func (s *SOS) notifyDoctor() {
	doc := s.User.AssignedDoctor
	if doc == nil {
		return
	}

	d := s.dispatcher
	alert := &Appointment{
		ID:       d.seq.Next(),
		User:     s.User,
		Doctor:   doc,
		DateTime: d.clock.Now(),
		Status:   AppointmentStatusSOSAlert,
	}
	doc.Appointments = append(doc.Appointments, alert)

	d.log.Infof("SOS %d: alert appointment %d placed on doctor %d's queue", s.ID, alert.ID, doc.DoctorID)
}

func (s *SOS) notifyContacts() {
	for _, contact := range s.User.SOSContacts {
		s.dispatcher.notifier.Notify(contact)
	}
}
