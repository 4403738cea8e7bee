package hotel

import (
	"fmt"
	"time"

	"hotel-management/logger"
)

// Manager is the facade the shell drives. It owns the in-memory state
// (catalog, registry, ledger) and pushes a full snapshot through the store
// after every mutation. Persistence failures are logged, never fatal.
type Manager struct {
	l        *logger.Logger
	store    *Store
	catalog  *Catalog
	registry *Registry
	ledger   *Ledger
}

// NewManager opens (or creates) the store at path and restores state. A store
// that cannot be read degrades to the default room catalog; guest and
// reservation data in an unreadable store is not recovered.
func NewManager(path string, l *logger.Logger) (*Manager, error) {
	store, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	m := &Manager{l: l, store: store}

	snap, err := store.Load()
	if err != nil {
		l.LogErrorf("Load snapshot: %v; starting with a fresh catalog", err)
		snap = nil
	}
	if snap != nil && len(snap.Rooms) > 0 {
		if err := m.restore(snap); err != nil {
			l.LogErrorf("Restore snapshot: %v; starting with a fresh catalog", err)
			snap = nil
		}
	}
	if snap == nil || len(snap.Rooms) == 0 {
		m.catalog = NewCatalog(DefaultRooms())
		m.registry = NewRegistry(nil, guestCounterSeed)
		m.ledger = NewLedger(nil, reservationCounterSeed)
		m.persist()
	}
	return m, nil
}

// restore builds live state from a snapshot, resolving the guest and room
// identifiers on each reservation record to in-memory objects.
func (m *Manager) restore(snap *Snapshot) error {
	catalog := NewCatalog(snap.Rooms)
	registry := NewRegistry(snap.Guests, snap.GuestCounter)

	reservations := make([]*Reservation, 0, len(snap.Reservations))
	for _, rec := range snap.Reservations {
		res := rec.Reservation
		if res.Guest = registry.ByID(rec.GuestID); res.Guest == nil {
			return fmt.Errorf("reservation %s references unknown guest %s", rec.ID, rec.GuestID)
		}
		if res.Room = catalog.ByNumber(rec.RoomNumber); res.Room == nil {
			return fmt.Errorf("reservation %s references unknown room %d", rec.ID, rec.RoomNumber)
		}
		reservations = append(reservations, &res)
	}

	m.catalog = catalog
	m.registry = registry
	m.ledger = NewLedger(reservations, snap.ReservationCounter)
	return nil
}

// Close closes the underlying store.
func (m *Manager) Close() error { return m.store.Close() }

// persist writes the full snapshot through the store. A failed write is
// reported but does not undo the in-memory mutation that preceded it.
func (m *Manager) persist() {
	records := make([]*ReservationRecord, 0, len(m.ledger.reservations))
	for _, res := range m.ledger.reservations {
		records = append(records, &ReservationRecord{
			Reservation: *res,
			GuestID:     res.Guest.ID,
			RoomNumber:  res.Room.Number,
		})
	}
	snap := &Snapshot{
		Rooms:              m.catalog.All(),
		Guests:             m.registry.All(),
		Reservations:       records,
		ReservationCounter: m.ledger.Counter(),
		GuestCounter:       m.registry.Counter(),
	}
	if err := m.store.Save(snap); err != nil {
		m.l.LogErrorf("Save snapshot: %v", err)
	}
}

// ------------------ Room views ------------------

func (m *Manager) Rooms() []*Room                            { return m.catalog.All() }
func (m *Manager) AvailableRooms() []*Room                   { return m.catalog.Available() }
func (m *Manager) AvailableRoomsByType(t RoomType) []*Room   { return m.catalog.AvailableByType(t) }
func (m *Manager) RoomByNumber(n int) *Room                  { return m.catalog.ByNumber(n) }

// ------------------ Guests ------------------

// RegisterGuest records a new guest and persists.
func (m *Manager) RegisterGuest(name, phone, email, idProof, address string) *Guest {
	guest := m.registry.Register(name, phone, email, idProof, address)
	m.persist()
	return guest
}

func (m *Manager) GuestByPhone(phone string) *Guest { return m.registry.ByPhone(phone) }
func (m *Manager) Guests() []*Guest                 { return m.registry.All() }

// ------------------ Reservations ------------------

// Book reserves the room for the guest and persists on success.
func (m *Manager) Book(guest *Guest, room *Room, checkIn, checkOut time.Time, advance float64) (*Reservation, error) {
	res, err := m.ledger.Book(guest, room, checkIn, checkOut, advance)
	if err != nil {
		return nil, err
	}
	m.persist()
	return res, nil
}

// CheckIn transitions the reservation to CheckedIn and persists.
func (m *Manager) CheckIn(id string) (*Reservation, error) {
	res, err := m.ledger.CheckIn(id)
	if err != nil {
		return nil, err
	}
	m.persist()
	return res, nil
}

// CheckOut settles the stay, frees the room and persists. The returned bill
// reflects the stay as priced at settlement time.
func (m *Manager) CheckOut(ref string) (*Reservation, Bill, error) {
	res := m.ledger.Resolve(ref)
	if res == nil {
		return nil, Bill{}, ErrReservationNotFound
	}
	// Bill before the status flip so settlement reporting and the mutation
	// stay in the documented order.
	bill := GenerateBill(res)
	if _, err := m.ledger.CheckOut(res.ID); err != nil {
		return nil, Bill{}, err
	}
	m.persist()
	return res, bill, nil
}

// Cancel terminates the reservation, frees the room and persists. The second
// return value is the reported refund.
func (m *Manager) Cancel(id string) (*Reservation, float64, error) {
	res, refund, err := m.ledger.Cancel(id)
	if err != nil {
		return nil, 0, err
	}
	m.persist()
	return res, refund, nil
}

func (m *Manager) ReservationByID(id string) *Reservation      { return m.ledger.ByID(id) }
func (m *Manager) ResolveReservation(ref string) *Reservation  { return m.ledger.Resolve(ref) }
func (m *Manager) ActiveReservationByRoom(n int) *Reservation  { return m.ledger.ActiveByRoom(n) }
func (m *Manager) Reservations() []*Reservation                { return m.ledger.All() }
func (m *Manager) ActiveReservations() []*Reservation          { return m.ledger.Active() }

// ------------------ Reports ------------------

// TypeSummary is the per-type availability breakdown.
type TypeSummary struct {
	Type      RoomType
	Total     int
	Available int
}

// RoomSummary is the occupancy report for the whole property.
type RoomSummary struct {
	Total     int
	Available int
	Occupied  int
	ByType    []TypeSummary
}

// Summary derives the occupancy report from the catalog.
func (m *Manager) Summary() RoomSummary {
	var sum RoomSummary
	perType := make(map[RoomType]*TypeSummary)
	for _, t := range RoomTypes() {
		ts := &TypeSummary{Type: t}
		perType[t] = ts
	}
	for _, r := range m.catalog.All() {
		sum.Total++
		perType[r.Type].Total++
		if r.Available {
			sum.Available++
			perType[r.Type].Available++
		}
	}
	sum.Occupied = sum.Total - sum.Available
	for _, t := range RoomTypes() {
		sum.ByType = append(sum.ByType, *perType[t])
	}
	return sum
}
