package catalog

import (
	"context"

	"photo-viewer/internal/logging"
	"photo-viewer/internal/selection"
)

// Actions is the batch-action collaborator: it applies destructive
// operations to the catalog and, only on success, updates the selection
// store so the visual surfaces converge on the post-action state.
type Actions struct {
	catalog *Catalog
	store   *selection.Store
}

// NewActions wires batch actions to a catalog and a selection store.
func NewActions(catalog *Catalog, store *selection.Store) *Actions {
	return &Actions{catalog: catalog, store: store}
}

// DeleteSelected deletes every currently selected asset. On success the
// selection is cleared in one notification cycle; on failure the selection
// is left untouched so the user can retry.
func (a *Actions) DeleteSelected(ctx context.Context) (int64, error) {
	ids := a.store.IDs()
	if len(ids) == 0 {
		return 0, nil
	}

	deleted, err := a.catalog.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}

	a.store.Clear()
	logging.Info("Batch delete removed %d assets", deleted)
	return deleted, nil
}

// DeleteOne deletes a single asset and removes it from the selection on
// success. Deleting an unselected asset leaves the selection untouched.
func (a *Actions) DeleteOne(ctx context.Context, id int64) error {
	if _, err := a.catalog.Delete(ctx, []int64{id}); err != nil {
		return err
	}
	a.store.Remove(id)
	return nil
}
