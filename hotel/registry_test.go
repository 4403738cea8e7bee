package hotel

import "testing"

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	reg := NewRegistry(nil, guestCounterSeed)

	first := reg.Register("Asha Rao", "9886000001", "asha@example.com", "AAD-1", "Bengaluru")
	second := reg.Register("Binod Kumar", "9886000002", "binod@example.com", "PAS-2", "Delhi")

	if first.ID != "G101" {
		t.Errorf("first guest id = %s, want G101", first.ID)
	}
	if second.ID != "G102" {
		t.Errorf("second guest id = %s, want G102", second.ID)
	}
	if got := len(reg.All()); got != 2 {
		t.Errorf("registry holds %d guests, want 2", got)
	}
}

func TestByPhoneReturnsFirstExactMatch(t *testing.T) {
	reg := NewRegistry(nil, guestCounterSeed)
	reg.Register("Asha Rao", "9886000001", "asha@example.com", "AAD-1", "Bengaluru")

	// Registration never de-duplicates, even on an identical phone number.
	dup := reg.Register("Asha R.", "9886000001", "asha2@example.com", "AAD-1", "Bengaluru")
	if dup.ID != "G102" {
		t.Errorf("duplicate phone still registers: id = %s, want G102", dup.ID)
	}

	if got := reg.ByPhone("9886000001"); got == nil || got.ID != "G101" {
		t.Errorf("ByPhone should return the first match, got %+v", got)
	}
	if reg.ByPhone("0000000000") != nil {
		t.Error("expected nil for an unknown phone")
	}
}

func TestRegistryCounterRestoresFromSnapshot(t *testing.T) {
	reg := NewRegistry([]*Guest{{ID: "G150"}}, 150)
	if got := reg.Register("New Guest", "1", "n@example.com", "X", "Y"); got.ID != "G151" {
		t.Errorf("restored registry should continue counting: id = %s, want G151", got.ID)
	}
}
