package render

import (
	"photo-viewer/internal/transform"
)

// Tier identifies the role a layer plays in the two-tier stack.
type Tier string

const (
	// TierPrimary is the top layer attempting the full-resolution source.
	TierPrimary Tier = "primary"
	// TierFallback is the bottom layer showing the lower-fidelity rendition.
	TierFallback Tier = "fallback"
)

// Layer is an in-memory render target. A target environment (canvas layer,
// native image view) mirrors this state; the engine only ever manipulates
// the Layer. Layers are driven exclusively from the viewer's dispatch loop,
// so they carry no locking.
type Layer struct {
	tier     Tier
	source   string
	visible  bool
	rendered bool
	width    int
	height   int
	tf       transform.Transform
}

// NewLayer creates an empty, hidden layer for the given tier.
func NewLayer(tier Tier) *Layer {
	return &Layer{tier: tier, tf: transform.Identity()}
}

// Tier returns the layer's role in the stack.
func (l *Layer) Tier() Tier {
	return l.tier
}

// Attach points the layer at a source reference and clears any previous
// render result. The layer stays at its current visibility; the loader
// decides when to reveal it.
func (l *Layer) Attach(source string) {
	l.source = source
	l.rendered = false
	l.width = 0
	l.height = 0
}

// Source returns the currently attached source reference.
func (l *Layer) Source() string {
	return l.source
}

// Complete marks the attached source as successfully rendered at the given
// pixel size.
func (l *Layer) Complete(width, height int) {
	l.rendered = true
	l.width = width
	l.height = height
}

// Rendered reports whether the attached source has been rendered.
func (l *Layer) Rendered() bool {
	return l.rendered
}

// RenderedSize returns the pixel size reported by the render target.
// Zero until Complete is called.
func (l *Layer) RenderedSize() (int, int) {
	return l.width, l.height
}

// SetVisible changes the layer's visibility. Returns false when the
// visibility was already in the requested state, so callers can skip
// redundant visual updates.
func (l *Layer) SetVisible(visible bool) bool {
	if l.visible == visible {
		return false
	}
	l.visible = visible
	return true
}

// Visible reports whether the layer is currently shown.
func (l *Layer) Visible() bool {
	return l.visible
}

// ApplyTransform applies the viewport transform to the layer. Returns false
// when the transform is unchanged.
func (l *Layer) ApplyTransform(tf transform.Transform) bool {
	if l.tf == tf {
		return false
	}
	l.tf = tf
	return true
}

// Transform returns the transform currently applied to the layer.
func (l *Layer) Transform() transform.Transform {
	return l.tf
}
