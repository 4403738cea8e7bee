package hotel

import "testing"

func TestDefaultRoomsPattern(t *testing.T) {
	rooms := DefaultRooms()
	if len(rooms) != 20 {
		t.Fatalf("expected 20 rooms, got %d", len(rooms))
	}

	counts := map[RoomType]int{}
	for _, r := range rooms {
		counts[r.Type]++
		if !r.Available {
			t.Errorf("room %d should start available", r.Number)
		}
		if !r.HasWifi {
			t.Errorf("room %d should have wifi", r.Number)
		}
		if r.Type != Single && !r.HasAC {
			t.Errorf("room %d (%s) should have AC", r.Number, r.Type)
		}
	}

	want := map[RoomType]int{Single: 5, Double: 8, Deluxe: 6, Suite: 3}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("expected %d %s rooms, got %d", n, typ, counts[typ])
		}
	}

	// Singles alternate AC: even-numbered rooms only.
	c := NewCatalog(rooms)
	for n := 101; n <= 105; n++ {
		r := c.ByNumber(n)
		if r == nil {
			t.Fatalf("room %d missing", n)
		}
		if r.HasAC != (n%2 == 0) {
			t.Errorf("room %d: HasAC = %v, want %v", n, r.HasAC, n%2 == 0)
		}
	}
}

func TestPricePerNight(t *testing.T) {
	for _, r := range DefaultRooms() {
		want := r.Type.BaseRate()
		if r.HasAC {
			want += 500
		}
		if r.HasWifi {
			want += 200
		}
		if got := r.PricePerNight(); got != want {
			t.Errorf("room %d: price = %.0f, want %.0f", r.Number, got, want)
		}
	}

	r := &Room{Number: 102, Type: Single, HasAC: true, HasWifi: true}
	if got := r.PricePerNight(); got != 2700 {
		t.Errorf("single with AC and wifi: price = %.0f, want 2700", got)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog(DefaultRooms())

	if c.ByNumber(999) != nil {
		t.Error("expected nil for an unknown room number")
	}

	c.ByNumber(201).Available = false
	if got := len(c.Available()); got != 19 {
		t.Errorf("available = %d, want 19", got)
	}
	doubles := c.AvailableByType(Double)
	if got := len(doubles); got != 7 {
		t.Errorf("available doubles = %d, want 7", got)
	}
	for _, r := range doubles {
		if r.Type != Double || !r.Available {
			t.Errorf("room %d should be an available double", r.Number)
		}
	}
}
