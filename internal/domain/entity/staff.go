package entity

// Nurse holds a single current care task. The task is overwritten
// wholesale; no history is kept.
type Nurse struct {
	Person

	NurseID     int64
	CurrentTask string
}

func NewNurse(person Person, nurseID int64) *Nurse {
	return &Nurse{Person: person, NurseID: nurseID}
}

// UpdateCareTask replaces the current care task.
func (n *Nurse) UpdateCareTask(task string) {
	n.CurrentTask = task
}

// Assistant holds a single current task, mutated by a doctor through
// AssignTask.
type Assistant struct {
	Person

	AssistantID int64
	CurrentTask string
}

func NewAssistant(person Person, assistantID int64) *Assistant {
	return &Assistant{Person: person, AssistantID: assistantID}
}

// UpdateTask replaces the current task.
func (a *Assistant) UpdateTask(task string) {
	a.CurrentTask = task
}
