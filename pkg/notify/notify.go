package notify

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Contact is an emergency contact reachable through a Notifier.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Notifier delivers a fire-and-forget notification to a single contact.
// Callers never consume a result, so implementations must swallow their own
// delivery failures.
type Notifier interface {
	Notify(contact Contact)
}

// Noop discards every notification. This is the default dispatch behavior:
// an actual transport can be wired in without changing the core contract.
type Noop struct{}

func (Noop) Notify(Contact) {}

// Log writes each notification to the application log in place of an
// external transport.
type Log struct {
	log *logrus.Logger
}

func NewLog(log *logrus.Logger) *Log {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Log{log: log}
}

func (l *Log) Notify(contact Contact) {
	l.log.Infof("Notified emergency contact %s (%s)", contact.Name, contact.Phone)
}

// ForMode returns the notifier for a configured dispatch mode ("noop" or
// "log"). Unknown modes fall back to Noop.
func ForMode(mode string, log *logrus.Logger) Notifier {
	if mode == "log" {
		return NewLog(log)
	}
	return Noop{}
}

// Delivery is one notification captured by a Recorder.
type Delivery struct {
	MessageID uuid.UUID
	Contact   Contact
}

// Recorder captures notifications for inspection in tests, tagging each with
// a message id.
type Recorder struct {
	Deliveries []Delivery
}

func (r *Recorder) Notify(contact Contact) {
	r.Deliveries = append(r.Deliveries, Delivery{
		MessageID: uuid.New(),
		Contact:   contact,
	})
}
