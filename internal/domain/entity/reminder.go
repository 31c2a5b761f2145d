package entity

import (
	"time"

	"go-healthcare-coordination/pkg/clock"
)

// ReminderStatus represents the status of a medication reminder.
type ReminderStatus string

const (
	ReminderStatusPending ReminderStatus = "pending"
	ReminderStatusSent    ReminderStatus = "sent"
	ReminderStatusTaken   ReminderStatus = "taken"
)

// Reminder is a scheduled medication notice owned by one patient. The
// status moves pending -> sent -> taken in practice, but only the
// pending -> sent step is guarded.
type Reminder struct {
	ID           int64
	MedicineName string
	Dosage       float64
	ScheduleTime time.Time
	Status       ReminderStatus

	clock clock.Clock
}

func NewReminder(id int64, medicineName string, scheduleTime time.Time, dosage float64, clk clock.Clock) *Reminder {
	if clk == nil {
		clk = clock.System{}
	}
	return &Reminder{
		ID:           id,
		MedicineName: medicineName,
		Dosage:       dosage,
		ScheduleTime: scheduleTime,
		Status:       ReminderStatusPending,
		clock:        clk,
	}
}

// Reschedule overwrites the schedule time and/or dosage; nil fields are
// left untouched. A new time reopens the reminder: status returns to
// pending even if it was already sent or taken.
func (r *Reminder) Reschedule(newTime *time.Time, newDosage *float64) {
	if newTime != nil {
		r.ScheduleTime = *newTime
		r.Status = ReminderStatusPending
	}
	if newDosage != nil {
		r.Dosage = *newDosage
	}
}

// SendNotification moves a pending reminder to sent once its schedule time
// has arrived, and reports whether the notification fired. Before the
// schedule time, or in any status other than pending, it is a no-op
// returning false.
func (r *Reminder) SendNotification() bool {
	if r.Status == ReminderStatusPending && !r.clock.Now().Before(r.ScheduleTime) {
		r.Status = ReminderStatusSent
		return true
	}
	return false
}

// MarkTaken forces the reminder to taken regardless of its current status.
// This is an explicit override, not a guarded transition.
func (r *Reminder) MarkTaken() {
	r.Status = ReminderStatusTaken
}

// IsPending checks if the reminder has not been sent or taken yet.
func (r *Reminder) IsPending() bool {
	return r.Status == ReminderStatusPending
}
