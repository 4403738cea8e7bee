package hotel

import (
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-management/logger"
)

func openTestManager(t *testing.T, path string) *Manager {
	t.Helper()
	mgr, err := NewManager(path, logger.New(log.New(io.Discard, "", 0)))
	require.NoError(t, err)
	return mgr
}

func TestFreshStoreSeedsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.db")
	mgr := openTestManager(t, path)
	defer mgr.Close()

	assert.Len(t, mgr.Rooms(), 20)
	assert.Len(t, mgr.AvailableRooms(), 20)

	sum := mgr.Summary()
	assert.Equal(t, 20, sum.Total)
	assert.Equal(t, 20, sum.Available)
	assert.Equal(t, 0, sum.Occupied)
	require.Len(t, sum.ByType, 4)
	assert.Equal(t, TypeSummary{Type: Single, Total: 5, Available: 5}, sum.ByType[0])
	assert.Equal(t, TypeSummary{Type: Suite, Total: 3, Available: 3}, sum.ByType[3])
}

func TestLifecyclePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.db")
	mgr := openTestManager(t, path)

	guest := mgr.RegisterGuest("Asha Rao", "9886000001", "asha@example.com", "AAD-1", "Bengaluru")
	assert.Equal(t, "G101", guest.ID)

	room := mgr.RoomByNumber(102)
	require.NotNil(t, room)

	res, err := mgr.Book(guest, room, date(2026, time.January, 10), date(2026, time.January, 13), 1000)
	require.NoError(t, err)
	assert.Equal(t, "RES1001", res.ID)

	_, err = mgr.CheckIn(res.ID)
	require.NoError(t, err)
	require.NoError(t, mgr.Close())

	reopened := openTestManager(t, path)
	defer reopened.Close()

	got := reopened.ReservationByID("res1001")
	require.NotNil(t, got)
	assert.Equal(t, CheckedIn, got.Status)
	assert.Equal(t, 8100.0, got.TotalAmount)

	// Foreign keys resolve back to the live catalog and registry objects.
	assert.Same(t, reopened.RoomByNumber(102), got.Room)
	assert.Same(t, reopened.GuestByPhone("9886000001"), got.Guest)
	assert.False(t, reopened.RoomByNumber(102).Available)

	// Both counters resume where they left off.
	next := reopened.RegisterGuest("Binod Kumar", "9886000002", "binod@example.com", "PAS-2", "Delhi")
	assert.Equal(t, "G102", next.ID)
}

func TestManagerCheckOutByRoomNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.db")
	mgr := openTestManager(t, path)
	defer mgr.Close()

	guest := mgr.RegisterGuest("Asha Rao", "9886000001", "asha@example.com", "AAD-1", "Bengaluru")
	room := mgr.RoomByNumber(201) // double, ₹4200/night
	require.NotNil(t, room)

	res, err := mgr.Book(guest, room, date(2026, time.January, 10), date(2026, time.January, 12), 2000)
	require.NoError(t, err)
	_, err = mgr.CheckIn(res.ID)
	require.NoError(t, err)

	settled, bill, err := mgr.CheckOut("201")
	require.NoError(t, err)
	assert.Equal(t, res.ID, settled.ID)
	assert.Equal(t, 8400.0, bill.RoomCharge)
	assert.InDelta(t, 9828.0, bill.GrandTotal, 1e-9)
	assert.InDelta(t, 7828.0, bill.AmountDue, 1e-9)
	assert.True(t, room.Available)
}

func TestManagerCancelPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.db")
	mgr := openTestManager(t, path)

	guest := mgr.RegisterGuest("Asha Rao", "9886000001", "asha@example.com", "AAD-1", "Bengaluru")
	room := mgr.RoomByNumber(401)
	require.NotNil(t, room)

	res, err := mgr.Book(guest, room, date(2026, time.January, 10), date(2026, time.January, 13), 1000)
	require.NoError(t, err)

	_, refund, err := mgr.Cancel(res.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, refund)
	require.NoError(t, mgr.Close())

	reopened := openTestManager(t, path)
	defer reopened.Close()

	got := reopened.ReservationByID(res.ID)
	require.NotNil(t, got)
	assert.Equal(t, Cancelled, got.Status)
	assert.True(t, reopened.RoomByNumber(401).Available)
	assert.Nil(t, reopened.ActiveReservationByRoom(401))
}
