package hotel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// reservationCounterSeed is where reservation ids start; the counter
// pre-increments, so the first reservation is RES1001.
const reservationCounterSeed = 1000

// Billing rates. GST and service tax apply on the room charge; half the
// advance is retained as cancellation charge.
const (
	gstRate        = 0.12
	serviceTaxRate = 0.05
	refundRate     = 0.5
)

// Ledger owns the reservation lifecycle state machine and the billing
// arithmetic. Reservations are never deleted; terminal states (checked out,
// cancelled) stay on record.
type Ledger struct {
	reservations []*Reservation
	counter      int
}

// NewLedger restores a ledger from persisted reservations and the persisted
// id counter.
func NewLedger(reservations []*Reservation, counter int) *Ledger {
	if counter < reservationCounterSeed {
		counter = reservationCounterSeed
	}
	return &Ledger{reservations: reservations, counter: counter}
}

// Book creates a Confirmed reservation and takes the room off the market.
// The total is frozen from the room's price at booking time.
func (l *Ledger) Book(guest *Guest, room *Room, checkIn, checkOut time.Time, advance float64) (*Reservation, error) {
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}

	l.counter++
	res := &Reservation{
		ID:          fmt.Sprintf("RES%d", l.counter),
		Guest:       guest,
		Room:        room,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      Confirmed,
		AdvancePaid: advance,
		BookingDate: time.Now(),
	}
	res.TotalAmount = float64(res.Nights()) * room.PricePerNight()

	room.Available = false
	l.reservations = append(l.reservations, res)
	return res, nil
}

// CheckIn moves a Confirmed reservation to CheckedIn. Every other state is
// rejected with its own reason.
func (l *Ledger) CheckIn(id string) (*Reservation, error) {
	res := l.ByID(id)
	if res == nil {
		return nil, ErrReservationNotFound
	}
	switch res.Status {
	case CheckedIn:
		return nil, ErrAlreadyCheckedIn
	case CheckedOut:
		return nil, ErrAlreadyCheckedOut
	case Cancelled:
		return nil, ErrReservationCancelled
	}
	res.Status = CheckedIn
	res.Room.Available = false
	return res, nil
}

// CheckOut settles a CheckedIn reservation and frees the room. The ref is
// matched as a reservation id first, then as the room number of an active
// reservation.
func (l *Ledger) CheckOut(ref string) (*Reservation, error) {
	res := l.Resolve(ref)
	if res == nil {
		return nil, ErrReservationNotFound
	}
	if res.Status != CheckedIn {
		return nil, ErrNotCheckedIn
	}
	res.Status = CheckedOut
	res.Room.Available = true
	return res, nil
}

// Cancel terminates a reservation that has not completed its stay and frees
// the room. The returned refund (half the advance) is informational; no
// stored balance changes. A checked-in reservation can still be cancelled:
// the guard only rejects the two terminal-by-settlement states.
func (l *Ledger) Cancel(id string) (*Reservation, float64, error) {
	res := l.ByID(id)
	if res == nil {
		return nil, 0, ErrReservationNotFound
	}
	if res.Status == Cancelled {
		return nil, 0, ErrAlreadyCancelled
	}
	if res.Status == CheckedOut {
		return nil, 0, ErrCancelCompleted
	}
	res.Status = Cancelled
	res.Room.Available = true
	return res, res.AdvancePaid * refundRate, nil
}

// ByID finds a reservation by id, case-insensitively. Returns nil on miss.
func (l *Ledger) ByID(id string) *Reservation {
	for _, res := range l.reservations {
		if strings.EqualFold(res.ID, id) {
			return res
		}
	}
	return nil
}

// ActiveByRoom finds the first Confirmed or CheckedIn reservation holding the
// given room. Returns nil on miss.
func (l *Ledger) ActiveByRoom(roomNumber int) *Reservation {
	for _, res := range l.reservations {
		if res.Room.Number == roomNumber && res.IsActive() {
			return res
		}
	}
	return nil
}

// Resolve finds a reservation by id, falling back to the active reservation
// on a room when ref parses as a room number.
func (l *Ledger) Resolve(ref string) *Reservation {
	if res := l.ByID(ref); res != nil {
		return res
	}
	if n, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		return l.ActiveByRoom(n)
	}
	return nil
}

// All returns every reservation in creation order.
func (l *Ledger) All() []*Reservation {
	return append([]*Reservation(nil), l.reservations...)
}

// Active returns the reservations currently holding a room.
func (l *Ledger) Active() []*Reservation {
	var out []*Reservation
	for _, res := range l.reservations {
		if res.IsActive() {
			out = append(out, res)
		}
	}
	return out
}

// Counter exposes the id counter for snapshotting.
func (l *Ledger) Counter() int { return l.counter }

// Bill itemizes settlement charges for a stay.
type Bill struct {
	Nights       int
	RatePerNight float64
	RoomCharge   float64
	GST          float64
	ServiceTax   float64
	GrandTotal   float64
	AdvancePaid  float64
	AmountDue    float64
}

// GenerateBill prices the stay from the room's current nightly rate. That
// rate can drift from the frozen TotalAmount if the room's amenities changed
// after booking; the drift is long-standing behavior and is kept.
func GenerateBill(res *Reservation) Bill {
	nights := res.Nights()
	rate := res.Room.PricePerNight()
	roomCharge := float64(nights) * rate
	gst := roomCharge * gstRate
	serviceTax := roomCharge * serviceTaxRate
	grandTotal := roomCharge + gst + serviceTax
	return Bill{
		Nights:       nights,
		RatePerNight: rate,
		RoomCharge:   roomCharge,
		GST:          gst,
		ServiceTax:   serviceTax,
		GrandTotal:   grandTotal,
		AdvancePaid:  res.AdvancePaid,
		AmountDue:    grandTotal - res.AdvancePaid,
	}
}
