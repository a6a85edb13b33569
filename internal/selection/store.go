package selection

import (
	"sort"

	"photo-viewer/internal/logging"
)

// View is a rendering surface subscribed to the store. SelectionChanged is
// invoked once per mutation cycle; implementations recompute their visible
// state from the store and must not cache membership independently.
type View interface {
	SelectionChanged()
}

// Store is the process-wide authoritative set of selected asset
// identifiers. Selection survives view re-renders (pagination) until
// explicitly cleared or consumed by a batch action.
type Store struct {
	ids   map[int64]struct{}
	views []View
}

// NewStore creates an empty selection store.
func NewStore() *Store {
	return &Store{ids: make(map[int64]struct{})}
}

// Subscribe registers a view and immediately delivers one notification so
// the view renders the current state. The returned function unsubscribes;
// it is safe to call more than once.
func (s *Store) Subscribe(v View) func() {
	s.views = append(s.views, v)
	v.SelectionChanged()

	return func() {
		for i, existing := range s.views {
			if existing == v {
				s.views = append(s.views[:i], s.views[i+1:]...)
				return
			}
		}
	}
}

// Toggle inserts id if absent and removes it if present. It always succeeds
// and is always followed by one notification cycle.
func (s *Store) Toggle(id int64) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.notify("toggle")
}

// SelectAll drives the select-all / select-none toggle from set equality:
// if the selection already equals exactly visibleIDs it clears, otherwise
// it becomes visibleIDs. Previously selected off-screen identifiers are not
// preserved; selecting "all" means all currently visible.
func (s *Store) SelectAll(visibleIDs []int64) {
	if s.equals(visibleIDs) {
		if len(s.ids) == 0 {
			return
		}
		s.ids = make(map[int64]struct{})
		s.notify("select_none")
		return
	}

	s.ids = make(map[int64]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		s.ids[id] = struct{}{}
	}
	s.notify("select_all")
}

// Clear empties the selection. No notification when already empty.
func (s *Store) Clear() {
	if len(s.ids) == 0 {
		return
	}
	s.ids = make(map[int64]struct{})
	s.notify("clear")
}

// Remove deletes a single id, typically after the asset itself was deleted
// by a batch action. Removing an absent id is a no-op and raises no
// notification.
func (s *Store) Remove(id int64) {
	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	s.notify("remove")
}

// Contains reports membership for a single identifier.
func (s *Store) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected identifiers.
func (s *Store) Count() int {
	return len(s.ids)
}

// IDs returns the selected identifiers in ascending order. Insertion order
// is not meaningful; consumers sort visually as needed.
func (s *Store) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// equals reports whether the selection is exactly the given id set.
func (s *Store) equals(ids []int64) bool {
	if len(s.ids) != len(ids) {
		return false
	}
	for _, id := range ids {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// notify runs one notification cycle. The subscriber list is snapshotted
// first: views subscribing during a cycle take effect next cycle, so no view
// ever observes a partially applied mutation.
func (s *Store) notify(op string) {
	logging.Debug("Selection %s: %d selected", op, len(s.ids))
	observeMutation(op, len(s.ids))

	views := make([]View, len(s.views))
	copy(views, s.views)
	for _, v := range views {
		v.SelectionChanged()
	}
}
