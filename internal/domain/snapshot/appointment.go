package snapshot

// AppointmentSummary is one row of a doctor's appointment projection.
// User is empty when no patient is attached to the appointment.
type AppointmentSummary struct {
	AppointmentID int64  `json:"appointment_id"`
	User          string `json:"user,omitempty"`
	DateTime      string `json:"date_time"`
	Status        string `json:"status"`
}

// DoctorSummary is one row of the hospital's doctor roster projection.
type DoctorSummary struct {
	DoctorID       int64  `json:"doctor_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// HospitalAppointment is one row of the hospital-wide appointment rollup.
type HospitalAppointment struct {
	AppointmentID int64  `json:"appointment_id"`
	Doctor        string `json:"doctor"`
	User          string `json:"user,omitempty"`
	DateTime      string `json:"date_time"`
	Status        string `json:"status"`
}
