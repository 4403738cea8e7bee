package hotel

// Catalog holds the fixed room inventory with linear-scan lookups. There is
// no removal operation; the inventory only changes availability flags.
type Catalog struct {
	rooms []*Room
}

// NewCatalog wraps an existing room list, usually restored from the store.
func NewCatalog(rooms []*Room) *Catalog {
	return &Catalog{rooms: rooms}
}

// DefaultRooms builds the stock 20-room inventory. The numbering and amenity
// pattern must stay exactly as is so previously persisted data keeps
// resolving: singles get AC on even numbers only, everything else has both
// AC and wifi.
func DefaultRooms() []*Room {
	var rooms []*Room
	for n := 101; n <= 105; n++ {
		rooms = append(rooms, &Room{Number: n, Type: Single, Available: true, HasAC: n%2 == 0, HasWifi: true})
	}
	for n := 201; n <= 208; n++ {
		rooms = append(rooms, &Room{Number: n, Type: Double, Available: true, HasAC: true, HasWifi: true})
	}
	for n := 301; n <= 306; n++ {
		rooms = append(rooms, &Room{Number: n, Type: Deluxe, Available: true, HasAC: true, HasWifi: true})
	}
	for n := 401; n <= 403; n++ {
		rooms = append(rooms, &Room{Number: n, Type: Suite, Available: true, HasAC: true, HasWifi: true})
	}
	return rooms
}

// All returns every room in creation order.
func (c *Catalog) All() []*Room {
	return append([]*Room(nil), c.rooms...)
}

// Available returns the rooms currently free to book.
func (c *Catalog) Available() []*Room {
	var out []*Room
	for _, r := range c.rooms {
		if r.Available {
			out = append(out, r)
		}
	}
	return out
}

// AvailableByType filters free rooms down to one type.
func (c *Catalog) AvailableByType(t RoomType) []*Room {
	var out []*Room
	for _, r := range c.rooms {
		if r.Available && r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// ByNumber returns the room or nil. Absence is a valid outcome the caller
// must check, not an error.
func (c *Catalog) ByNumber(n int) *Room {
	for _, r := range c.rooms {
		if r.Number == n {
			return r
		}
	}
	return nil
}
