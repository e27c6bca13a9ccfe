package widget

import "testing"

func TestRegistryCollidesByName(t *testing.T) {
	r := NewRegistry()

	if !r.Register(Registration{Name: "Button", Style: ".button{}"}) {
		t.Fatal("first registration should be added")
	}
	if r.Register(Registration{Name: "Button", Style: ".button{}"}) {
		t.Error("same name should not be added twice")
	}
	r.Register(Registration{Name: "Card", Style: ".card{}", Script: "card()"})

	got := r.Registrations()
	if len(got) != 2 {
		t.Fatalf("len(Registrations()) = %d, want 2", len(got))
	}
	if got[0].Name != "Button" || got[1].Name != "Card" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestRegistrySealsOnRead(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Name: "View"})

	if r.Sealed() {
		t.Fatal("registry sealed before first read")
	}
	_ = r.Registrations()
	if !r.Sealed() {
		t.Fatal("registry should be sealed after first read")
	}
	if r.Register(Registration{Name: "Late"}) {
		t.Error("registration after seal should be rejected")
	}
	if _, ok := r.Lookup("Late"); ok {
		t.Error("late registration should not be visible")
	}
	if reg, ok := r.Lookup("View"); !ok || reg.Name != "View" {
		t.Errorf("Lookup(View) = %+v, %v", reg, ok)
	}
}
