package hotel

import "time"

// RoomType classifies a room and selects its base nightly rate.
type RoomType string

const (
	Single RoomType = "Single"
	Double RoomType = "Double"
	Deluxe RoomType = "Deluxe"
	Suite  RoomType = "Suite"
)

// baseRates maps each room type to its base nightly rate in rupees.
var baseRates = map[RoomType]float64{
	Single: 2000,
	Double: 3500,
	Deluxe: 5000,
	Suite:  8000,
}

// BaseRate returns the type's base nightly rate before amenity surcharges.
func (t RoomType) BaseRate() float64 { return baseRates[t] }

// Valid reports whether t is one of the known room types.
func (t RoomType) Valid() bool {
	_, ok := baseRates[t]
	return ok
}

// RoomTypes lists every room type in ascending rate order.
func RoomTypes() []RoomType {
	return []RoomType{Single, Double, Deluxe, Suite}
}

// Fixed per-night amenity surcharges.
const (
	acSurcharge   = 500
	wifiSurcharge = 200
)

// Room represents a single room in the property. Rooms are created once at
// initialization (or restored from the store) and are never deleted; only the
// availability flag changes over a room's life.
type Room struct {
	Number    int      `json:"number"`
	Type      RoomType `json:"type"`
	Available bool     `json:"available"`
	HasAC     bool     `json:"has_ac"`
	HasWifi   bool     `json:"has_wifi"`
}

// PricePerNight is the effective nightly price: the type's base rate plus
// fixed surcharges for each amenity the room carries.
func (r *Room) PricePerNight() float64 {
	price := r.Type.BaseRate()
	if r.HasAC {
		price += acSurcharge
	}
	if r.HasWifi {
		price += wifiSurcharge
	}
	return price
}

// Guest holds the personal details captured at booking time.
type Guest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	IDProof string `json:"id_proof"`
	Address string `json:"address"`
}

// Status is the lifecycle state of a reservation.
type Status string

const (
	Confirmed  Status = "CONFIRMED"
	CheckedIn  Status = "CHECKED_IN"
	CheckedOut Status = "CHECKED_OUT"
	Cancelled  Status = "CANCELLED"
)

// Reservation links a guest to a room for a date range. TotalAmount is frozen
// at booking time and never revised, even if the room's price inputs change
// later; billing recomputes charges from the room's current price instead.
type Reservation struct {
	ID          string    `json:"id"`
	Guest       *Guest    `json:"-"`
	Room        *Room     `json:"-"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Status      Status    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	AdvancePaid float64   `json:"advance_paid"`
	BookingDate time.Time `json:"booking_date"`
}

// Nights is the stay length in whole days.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// BalanceDue is the frozen total minus the advance. It excludes taxes; the
// tax-inclusive amount due comes from GenerateBill.
func (r *Reservation) BalanceDue() float64 {
	return r.TotalAmount - r.AdvancePaid
}

// IsActive reports whether the reservation still holds its room.
func (r *Reservation) IsActive() bool {
	return r.Status == Confirmed || r.Status == CheckedIn
}

// ReservationRecord is the persisted form of a reservation: guest and room
// are stored as identifiers and resolved to live objects after load.
type ReservationRecord struct {
	Reservation
	GuestID    string
	RoomNumber int
}

// Snapshot is the complete persistable state: all rooms, guests and
// reservations plus both id counters, written and restored as one unit.
type Snapshot struct {
	Rooms              []*Room
	Guests             []*Guest
	Reservations       []*ReservationRecord
	ReservationCounter int
	GuestCounter       int
}
