package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthcare-coordination/pkg/clock"
)

func TestVaccinationGenerateScheduleDoseDates(t *testing.T) {
	dob := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFake(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	v := NewVaccination(1, dob, "Hexavalent", dob, clk)

	schedule := v.GenerateSchedule()
	require.Len(t, schedule, 6)

	wantDates := []string{
		"2023-01-15", // birth
		"2023-02-26", // 6 weeks
		"2023-03-26", // 10 weeks
		"2023-04-23", // 14 weeks
		"2023-10-12", // 9 months
		"2024-04-09", // 15 months
	}
	for i, dose := range schedule {
		assert.Equal(t, i+1, dose.DoseNumber)
		assert.Equal(t, "Hexavalent", dose.VaccineName)
		assert.Equal(t, wantDates[i], dose.DueDate)
	}
}

func TestVaccinationGenerateScheduleStatusRecomputedPerCall(t *testing.T) {
	dob := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFake(time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC))
	v := NewVaccination(1, dob, "Hexavalent", dob, clk)

	schedule := v.GenerateSchedule()
	assert.Equal(t, "overdue", schedule[0].Status)  // 2023-01-15
	assert.Equal(t, "overdue", schedule[1].Status)  // 2023-02-26
	assert.Equal(t, "pending", schedule[2].Status)  // 2023-03-26
	assert.Equal(t, "pending", schedule[5].Status)  // 2024-04-09

	// Advance past dose 3; the label changes on the next call.
	clk.Set(time.Date(2023, 4, 1, 9, 0, 0, 0, time.UTC))
	schedule = v.GenerateSchedule()
	assert.Equal(t, "overdue", schedule[2].Status)
	assert.Equal(t, "pending", schedule[3].Status)
}

func TestVaccinationGenerateScheduleDueTodayIsPending(t *testing.T) {
	dob := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFake(time.Date(2023, 2, 26, 23, 0, 0, 0, time.UTC))
	v := NewVaccination(1, dob, "Hexavalent", dob, clk)

	schedule := v.GenerateSchedule()
	assert.Equal(t, "pending", schedule[1].Status)
}

func TestVaccinationSendReminderWindow(t *testing.T) {
	today := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFake(today)

	cases := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"due today", today, true},
		{"due in three days", today.AddDate(0, 0, 3), true},
		{"due in four days", today.AddDate(0, 0, 4), false},
		{"already past due", today.AddDate(0, 0, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVaccination(1, today.AddDate(-1, 0, 0), "MMR", tc.due, clk)
			assert.Equal(t, tc.want, v.SendReminder())
			assert.Equal(t, VaccinationStatusPending, v.Status)
		})
	}
}

func TestVaccinationSendReminderRequiresPendingStatus(t *testing.T) {
	today := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFake(today)
	v := NewVaccination(1, today.AddDate(-1, 0, 0), "MMR", today.AddDate(0, 0, 1), clk)

	require.True(t, v.SendReminder())
	v.ConfirmCompletion()
	assert.Equal(t, VaccinationStatusCompleted, v.Status)
	assert.False(t, v.SendReminder())
}

func TestVaccinationDueDateIndependentOfSchedule(t *testing.T) {
	dob := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFake(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	// The course due date has no bearing on the generated dose dates.
	v := NewVaccination(1, dob, "Hexavalent", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), clk)
	schedule := v.GenerateSchedule()
	assert.Equal(t, "2023-01-15", schedule[0].DueDate)
	assert.False(t, v.SendReminder())
}
