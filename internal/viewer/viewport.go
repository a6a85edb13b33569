package viewer

import (
	"photo-viewer/internal/transform"
)

// ViewportState is the externally visible zoom/pan state of a session.
type ViewportState struct {
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
	Dragging   bool    `json:"dragging"`
}

// Viewport holds per-session zoom/pan/drag state. Translation bounds are
// recomputed from the current scale and the asset's intrinsic dimensions on
// every change; the stacked layers may render at different sizes, so the
// container and intrinsic sizes are the only stable inputs.
type Viewport struct {
	scale    float64
	tx, ty   float64
	dragging bool

	anchorX, anchorY float64
	baseTX, baseTY   float64

	intrinsicW, intrinsicH int
	containerW, containerH int
}

func newViewport(intrinsicW, intrinsicH, containerW, containerH int) Viewport {
	return Viewport{
		scale:      1,
		intrinsicW: intrinsicW,
		intrinsicH: intrinsicH,
		containerW: containerW,
		containerH: containerH,
	}
}

// ZoomBy adjusts the scale by delta, clamped to the zoom limits, and
// re-clamps the translation to the bounds of the new scale. Returns false
// when the clamped scale is unchanged.
func (v *Viewport) ZoomBy(delta float64) bool {
	next := transform.ClampScale(v.scale + delta)
	if next == v.scale {
		return false
	}
	v.scale = next
	v.tx = transform.ClampOffset(v.tx, transform.MaxOffset(v.intrinsicW, v.scale, v.containerW))
	v.ty = transform.ClampOffset(v.ty, transform.MaxOffset(v.intrinsicH, v.scale, v.containerH))
	return true
}

// Draggable reports whether dragging is meaningful. At scale 1 the asset is
// fully visible; the cursor affordance should reflect "not draggable".
func (v *Viewport) Draggable() bool {
	return v.scale > 1
}

// BeginDrag records the drag anchor. A no-op when the viewport is not
// draggable. Returns whether a drag started.
func (v *Viewport) BeginDrag(pointerX, pointerY float64) bool {
	if !v.Draggable() {
		return false
	}
	v.dragging = true
	v.anchorX = pointerX
	v.anchorY = pointerY
	v.baseTX = v.tx
	v.baseTY = v.ty
	return true
}

// ContinueDrag computes the candidate translation from the anchor delta and
// clamps each axis independently. Returns false when no drag is in progress
// or the clamped translation is unchanged.
func (v *Viewport) ContinueDrag(pointerX, pointerY float64) bool {
	if !v.dragging {
		return false
	}

	candX := v.baseTX + (pointerX - v.anchorX)
	candY := v.baseTY + (pointerY - v.anchorY)

	nextX := transform.ClampOffset(candX, transform.MaxOffset(v.intrinsicW, v.scale, v.containerW))
	nextY := transform.ClampOffset(candY, transform.MaxOffset(v.intrinsicH, v.scale, v.containerH))

	if nextX == v.tx && nextY == v.ty {
		return false
	}
	v.tx = nextX
	v.ty = nextY
	return true
}

// EndDrag clears the drag-in-progress flag; the transform persists.
// Returns false when no drag was in progress.
func (v *Viewport) EndDrag() bool {
	if !v.dragging {
		return false
	}
	v.dragging = false
	return true
}

// Reset returns the viewport to scale 1 with zero translation. Idempotent:
// returns false when already at the identity state.
func (v *Viewport) Reset() bool {
	if v.scale == 1 && v.tx == 0 && v.ty == 0 && !v.dragging {
		return false
	}
	v.scale = 1
	v.tx = 0
	v.ty = 0
	v.dragging = false
	return true
}

// Transform returns the affine transform to apply to the render layers.
func (v *Viewport) Transform() transform.Transform {
	return transform.Transform{Scale: v.scale, TranslateX: v.tx, TranslateY: v.ty}
}

// State returns the externally visible viewport state.
func (v *Viewport) State() ViewportState {
	return ViewportState{
		Scale:      v.scale,
		TranslateX: v.tx,
		TranslateY: v.ty,
		Dragging:   v.dragging,
	}
}
