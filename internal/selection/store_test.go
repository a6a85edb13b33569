package selection

import (
	"reflect"
	"testing"
)

// countingView records how many notification cycles it received.
type countingView struct {
	notifications int
}

func (v *countingView) SelectionChanged() { v.notifications++ }

func TestToggleInvolution(t *testing.T) {
	store := NewStore()

	if store.Contains(7) {
		t.Fatal("Contains(7) = true on empty store")
	}

	store.Toggle(7)
	if !store.Contains(7) {
		t.Fatal("Contains(7) = false after first toggle")
	}

	store.Toggle(7)
	if store.Contains(7) {
		t.Error("Contains(7) = true after second toggle")
	}
	if store.Count() != 0 {
		t.Errorf("Count() = %d, want 0", store.Count())
	}
}

func TestToggleNotifiesEveryTime(t *testing.T) {
	store := NewStore()
	view := &countingView{}
	store.Subscribe(view)

	base := view.notifications
	store.Toggle(1)
	store.Toggle(1)
	store.Toggle(2)

	if got := view.notifications - base; got != 3 {
		t.Errorf("notifications = %d, want 3", got)
	}
}

func TestSelectAllToggles(t *testing.T) {
	store := NewStore()
	visible := []int64{1, 2, 3}

	store.SelectAll(visible)
	if store.Count() != 3 {
		t.Fatalf("Count() = %d after SelectAll, want 3", store.Count())
	}
	for _, id := range visible {
		if !store.Contains(id) {
			t.Errorf("Contains(%d) = false after SelectAll", id)
		}
	}

	// Same visible set again: set equality drives the select-none half of
	// the toggle.
	store.SelectAll(visible)
	if store.Count() != 0 {
		t.Errorf("Count() = %d after second SelectAll, want 0", store.Count())
	}

	store.SelectAll(visible)
	if store.Count() != 3 {
		t.Errorf("Count() = %d after third SelectAll, want 3", store.Count())
	}
}

func TestSelectAllReplacesOffScreenSelection(t *testing.T) {
	store := NewStore()
	store.Toggle(99) // selected on a previous page

	store.SelectAll([]int64{1, 2})
	if store.Contains(99) {
		t.Error("off-screen id survived SelectAll")
	}
	if !store.Contains(1) || !store.Contains(2) {
		t.Error("visible ids missing after SelectAll")
	}
}

func TestSelectAllSingleNotification(t *testing.T) {
	store := NewStore()
	view := &countingView{}
	store.Subscribe(view)

	base := view.notifications
	store.SelectAll([]int64{1, 2, 3, 4, 5})

	if got := view.notifications - base; got != 1 {
		t.Errorf("notifications = %d for multi-id mutation, want 1", got)
	}
}

func TestSelectAllPartialOverlapSelects(t *testing.T) {
	store := NewStore()
	store.Toggle(1)

	// Selection {1} != visible {1,2}: this is a select-all, not a clear.
	store.SelectAll([]int64{1, 2})
	if store.Count() != 2 {
		t.Errorf("Count() = %d, want 2", store.Count())
	}
}

func TestRemoveAbsentIsSilent(t *testing.T) {
	store := NewStore()
	store.Toggle(1)

	view := &countingView{}
	store.Subscribe(view)
	base := view.notifications

	store.Remove(42)
	if got := view.notifications - base; got != 0 {
		t.Errorf("notifications = %d for absent Remove, want 0", got)
	}
	if !store.Contains(1) {
		t.Error("Remove(42) disturbed membership of 1")
	}
	if store.Count() != 1 {
		t.Errorf("Count() = %d, want 1", store.Count())
	}
}

func TestRemovePresent(t *testing.T) {
	store := NewStore()
	store.Toggle(1)
	store.Toggle(2)

	view := &countingView{}
	store.Subscribe(view)
	base := view.notifications

	store.Remove(1)
	if store.Contains(1) {
		t.Error("Contains(1) = true after Remove")
	}
	if got := view.notifications - base; got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.Toggle(1)
	store.Toggle(2)

	view := &countingView{}
	store.Subscribe(view)
	base := view.notifications

	store.Clear()
	if store.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", store.Count())
	}
	if got := view.notifications - base; got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}

	// Clearing an empty store changes nothing and stays silent.
	store.Clear()
	if got := view.notifications - base; got != 1 {
		t.Errorf("notifications = %d after redundant Clear, want 1", got)
	}
}

func TestIDsSorted(t *testing.T) {
	store := NewStore()
	for _, id := range []int64{30, 7, 19, 2} {
		store.Toggle(id)
	}

	want := []int64{2, 7, 19, 30}
	if got := store.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestUnsubscribe(t *testing.T) {
	store := NewStore()
	view := &countingView{}
	unsubscribe := store.Subscribe(view)

	base := view.notifications
	unsubscribe()
	store.Toggle(1)

	if got := view.notifications - base; got != 0 {
		t.Errorf("notifications = %d after unsubscribe, want 0", got)
	}

	// Second call is harmless.
	unsubscribe()
}

func TestSubscribeDeliversInitialState(t *testing.T) {
	store := NewStore()
	store.Toggle(5)

	card := NewGridCard(store, 5)
	defer card.Close()

	if !card.Selected() {
		t.Error("grid card did not render pre-existing selection on subscribe")
	}
}
