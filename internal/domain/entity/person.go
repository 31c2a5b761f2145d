package entity

import (
	"go-healthcare-coordination/internal/domain/snapshot"
)

// Person is the identity shape shared by every human role. Roles embed it
// rather than subclassing it; no role overrides its behavior.
type Person struct {
	ID      int64
	Name    string
	Age     int
	Contact string
	Gender  string
}

// ProfileUpdate enumerates the updatable base attributes. A nil field leaves
// the current value untouched, and fields outside this set cannot be
// addressed at all, so an unknown-field update is impossible by
// construction.
type ProfileUpdate struct {
	Name    *string
	Age     *int
	Contact *string
	Gender  *string
}

// UpdateProfile applies a partial update. It never fails.
func (p *Person) UpdateProfile(update ProfileUpdate) {
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Age != nil {
		p.Age = *update.Age
	}
	if update.Contact != nil {
		p.Contact = *update.Contact
	}
	if update.Gender != nil {
		p.Gender = *update.Gender
	}
}

// ViewProfile returns a snapshot of the five base attributes and nothing
// else.
func (p *Person) ViewProfile() snapshot.Profile {
	return snapshot.Profile{
		PersonID: p.ID,
		Name:     p.Name,
		Age:      p.Age,
		Contact:  p.Contact,
		Gender:   p.Gender,
	}
}
