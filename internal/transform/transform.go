package transform

// Zoom limits for the interactive viewport.
const (
	// MinScale is the smallest permitted zoom factor.
	MinScale = 0.5
	// MaxScale is the largest permitted zoom factor.
	MaxScale = 5.0
)

// Transform is a clamped affine transform applied to a rendered layer.
type Transform struct {
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
}

// Identity returns the fit-to-container transform applied when an asset is
// first opened.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ClampScale clamps a zoom factor to [MinScale, MaxScale].
func ClampScale(scale float64) float64 {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

// MaxOffset returns the largest translation magnitude, in pixels, that keeps
// the scaled asset from leaving a gap at the container edge. The bound is
// computed from the asset's intrinsic dimension, not the rendered layer's,
// because the stacked primary and fallback layers may report different
// rendered sizes.
func MaxOffset(intrinsic int, scale float64, container int) float64 {
	offset := (float64(intrinsic)*scale - float64(container)) / 2
	if offset < 0 {
		return 0
	}
	return offset
}

// ClampOffset clamps a candidate translation to [-maxOffset, +maxOffset].
func ClampOffset(candidate, maxOffset float64) float64 {
	if candidate < -maxOffset {
		return -maxOffset
	}
	if candidate > maxOffset {
		return maxOffset
	}
	return candidate
}

// FitSize returns the dimensions of an intrinsic size scaled to fit inside a
// container while preserving aspect ratio. Images smaller than the container
// are not enlarged.
func FitSize(intrinsicW, intrinsicH, containerW, containerH int) (int, int) {
	if intrinsicW <= 0 || intrinsicH <= 0 || containerW <= 0 || containerH <= 0 {
		return 0, 0
	}
	if intrinsicW <= containerW && intrinsicH <= containerH {
		return intrinsicW, intrinsicH
	}

	scaleW := float64(containerW) / float64(intrinsicW)
	scaleH := float64(containerH) / float64(intrinsicH)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	w := int(float64(intrinsicW) * scale)
	h := int(float64(intrinsicH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
