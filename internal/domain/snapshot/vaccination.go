package snapshot

// VaccineDose is one entry of a generated vaccination schedule. Status is
// recomputed against the current date on every generation and is not stored
// anywhere.
type VaccineDose struct {
	DoseNumber  int    `json:"dose_number"`
	VaccineName string `json:"vaccine_name"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}
