package entity

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T, personID int64, name string) *User {
	t.Helper()
	u, err := NewUser(UserParams{
		PersonID: personID,
		Name:     name,
		Age:      30,
		Contact:  "+15550101",
		Gender:   "F",
		UserID:   personID * 100,
		Password: "secure_pass",
	}, nil)
	require.NoError(t, err)
	return u
}

func testDoctor(t *testing.T, personID int64, name string) *Doctor {
	t.Helper()
	d, err := NewDoctor(DoctorParams{
		PersonID:       personID,
		Name:           name,
		Age:            45,
		Contact:        "+15550202",
		Gender:         "M",
		DoctorID:       personID * 100,
		Password:       "doctor_pass",
		Specialization: "Pediatrics",
	}, nil)
	require.NoError(t, err)
	return d
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}
