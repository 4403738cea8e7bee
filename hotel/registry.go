package hotel

import "fmt"

// guestCounterSeed is where guest ids start; the counter pre-increments, so
// the first guest is G101.
const guestCounterSeed = 100

// Registry is the append-only guest book. Guests are never deleted or merged,
// and registration performs no validation or duplicate detection; ByPhone
// exists for manual lookups only.
type Registry struct {
	guests  []*Guest
	counter int
}

// NewRegistry restores a registry from persisted guests and the persisted id
// counter.
func NewRegistry(guests []*Guest, counter int) *Registry {
	if counter < guestCounterSeed {
		counter = guestCounterSeed
	}
	return &Registry{guests: guests, counter: counter}
}

// Register creates a guest with the next sequential id. It always succeeds.
func (g *Registry) Register(name, phone, email, idProof, address string) *Guest {
	g.counter++
	guest := &Guest{
		ID:      fmt.Sprintf("G%d", g.counter),
		Name:    name,
		Phone:   phone,
		Email:   email,
		IDProof: idProof,
		Address: address,
	}
	g.guests = append(g.guests, guest)
	return guest
}

// ByPhone returns the first guest with an exactly matching phone number, or
// nil when none matches.
func (g *Registry) ByPhone(phone string) *Guest {
	for _, guest := range g.guests {
		if guest.Phone == phone {
			return guest
		}
	}
	return nil
}

// ByID returns the guest with the given id, or nil.
func (g *Registry) ByID(id string) *Guest {
	for _, guest := range g.guests {
		if guest.ID == id {
			return guest
		}
	}
	return nil
}

// All returns every guest in creation order.
func (g *Registry) All() []*Guest {
	return append([]*Guest(nil), g.guests...)
}

// Counter exposes the id counter for snapshotting.
func (g *Registry) Counter() int { return g.counter }
