package entity

import (
	"time"

	"go-healthcare-coordination/internal/domain/snapshot"
	"go-healthcare-coordination/pkg/clock"
)

// VaccinationStatus represents the overall status of a vaccine course.
type VaccinationStatus string

const (
	VaccinationStatusPending   VaccinationStatus = "pending"
	VaccinationStatusCompleted VaccinationStatus = "completed"
)

// Dose due dates are fixed day offsets from the date of birth: birth,
// 6 weeks, 10 weeks, 14 weeks, 9 months, 15 months.
var doseOffsetDays = [...]int{0, 42, 70, 98, 270, 450}

// Per-dose labels computed at schedule generation time. Distinct from
// VaccinationStatus, which tracks the course as a whole.
const (
	doseStatusPending = "pending"
	doseStatusOverdue = "overdue"
)

// Vaccination tracks a single vaccine course for an infant. It is
// standalone and not linked to a patient. The course-level DueDate drives
// SendReminder and is unrelated to the six dose dates produced by
// GenerateSchedule; the two behaviors are independent.
type Vaccination struct {
	ID          int64
	BabyDOB     time.Time
	VaccineName string
	DueDate     time.Time
	Status      VaccinationStatus

	clock clock.Clock
}

func NewVaccination(id int64, babyDOB time.Time, vaccineName string, dueDate time.Time, clk clock.Clock) *Vaccination {
	if clk == nil {
		clk = clock.System{}
	}
	return &Vaccination{
		ID:          id,
		BabyDOB:     babyDOB,
		VaccineName: vaccineName,
		DueDate:     dueDate,
		Status:      VaccinationStatusPending,
		clock:       clk,
	}
}

// GenerateSchedule derives the six-dose schedule from the date of birth.
// Dose statuses are computed against today's date on every call and never
// stored, so a dose can move from pending to overdue between calls.
func (v *Vaccination) GenerateSchedule() []snapshot.VaccineDose {
	today := truncateToDay(v.clock.Now())
	doses := make([]snapshot.VaccineDose, 0, len(doseOffsetDays))
	for i, days := range doseOffsetDays {
		due := truncateToDay(v.BabyDOB.AddDate(0, 0, days))
		status := doseStatusPending
		if due.Before(today) {
			status = doseStatusOverdue
		}
		doses = append(doses, snapshot.VaccineDose{
			DoseNumber:  i + 1,
			VaccineName: v.VaccineName,
			DueDate:     due.Format("2006-01-02"),
			Status:      status,
		})
	}
	return doses
}

// SendReminder reports whether the course-level due date falls within the
// next three days (inclusive of today) while the course is still pending.
// It never mutates state.
func (v *Vaccination) SendReminder() bool {
	if v.Status != VaccinationStatusPending {
		return false
	}
	today := truncateToDay(v.clock.Now())
	due := truncateToDay(v.DueDate)
	daysUntil := int(due.Sub(today).Hours() / 24)
	return daysUntil >= 0 && daysUntil <= 3
}

// ConfirmCompletion marks the course completed regardless of prior status.
func (v *Vaccination) ConfirmCompletion() {
	v.Status = VaccinationStatusCompleted
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
