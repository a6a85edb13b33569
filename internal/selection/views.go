package selection

import "fmt"

// GridCard mirrors the checkmark indicator on a grid card. The rendered
// state is recomputed from the store on every notification.
type GridCard struct {
	store       *Store
	id          int64
	selected    bool
	unsubscribe func()
}

// NewGridCard creates and subscribes a grid-card indicator for one asset.
func NewGridCard(store *Store, id int64) *GridCard {
	c := &GridCard{store: store, id: id}
	c.unsubscribe = store.Subscribe(c)
	return c
}

// SelectionChanged implements View.
func (c *GridCard) SelectionChanged() {
	c.selected = c.store.Contains(c.id)
}

// Selected reports the rendered indicator state.
func (c *GridCard) Selected() bool {
	return c.selected
}

// Close detaches the card when its asset scrolls out of the rendered page.
func (c *GridCard) Close() {
	c.unsubscribe()
}

// ListRow mirrors the selected-row highlight in the list layout.
type ListRow struct {
	store       *Store
	id          int64
	highlighted bool
	unsubscribe func()
}

// NewListRow creates and subscribes a list-row indicator for one asset.
func NewListRow(store *Store, id int64) *ListRow {
	r := &ListRow{store: store, id: id}
	r.unsubscribe = store.Subscribe(r)
	return r
}

// SelectionChanged implements View.
func (r *ListRow) SelectionChanged() {
	r.highlighted = r.store.Contains(r.id)
}

// Highlighted reports the rendered row state.
func (r *ListRow) Highlighted() bool {
	return r.highlighted
}

// Close detaches the row.
func (r *ListRow) Close() {
	r.unsubscribe()
}

// Badge is the permanent per-asset indicator shown on detail surfaces.
// Unlike the grid checkmark it is always present; only its visibility
// follows membership.
type Badge struct {
	store       *Store
	id          int64
	visible     bool
	unsubscribe func()
}

// NewBadge creates and subscribes a badge for one asset.
func NewBadge(store *Store, id int64) *Badge {
	b := &Badge{store: store, id: id}
	b.unsubscribe = store.Subscribe(b)
	return b
}

// SelectionChanged implements View.
func (b *Badge) SelectionChanged() {
	b.visible = b.store.Contains(b.id)
}

// Visible reports whether the badge is shown.
func (b *Badge) Visible() bool {
	return b.visible
}

// Close detaches the badge.
func (b *Badge) Close() {
	b.unsubscribe()
}

// Toolbar gates batch actions on the selection and relabels itself with the
// current count.
type Toolbar struct {
	store       *Store
	action      string
	enabled     bool
	label       string
	unsubscribe func()
}

// NewToolbar creates and subscribes a toolbar for a named batch action
// (e.g. "Delete").
func NewToolbar(store *Store, action string) *Toolbar {
	t := &Toolbar{store: store, action: action}
	t.unsubscribe = store.Subscribe(t)
	return t
}

// SelectionChanged implements View.
func (t *Toolbar) SelectionChanged() {
	count := t.store.Count()
	t.enabled = count > 0
	if count > 0 {
		t.label = fmt.Sprintf("%s (%d)", t.action, count)
	} else {
		t.label = t.action
	}
}

// Enabled reports whether the batch action is available.
func (t *Toolbar) Enabled() bool {
	return t.enabled
}

// Label returns the rendered button label.
func (t *Toolbar) Label() string {
	return t.label
}

// Close detaches the toolbar.
func (t *Toolbar) Close() {
	t.unsubscribe()
}
