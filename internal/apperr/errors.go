package apperr

import "errors"

// Sentinel failures surfaced by mesh generation and rendering. Callers match
// with errors.Is; the wrapped message carries the human-readable detail.
var (
	// ErrInsufficientContour means fewer than 3 boundary points were found in
	// the alpha mask.
	ErrInsufficientContour = errors.New("insufficient contour: provide a transparent PNG/WebP or run the matting service first")

	// ErrNoBonesBound means mesh generation was requested with an empty bone set.
	ErrNoBonesBound = errors.New("no bones bound")

	// ErrDegenerateTriangulation means triangulation produced zero triangles
	// that survive the alpha-mask filter.
	ErrDegenerateTriangulation = errors.New("degenerate triangulation")

	// ErrSingularAffine means a triangle's bind points are colinear. The
	// renderer skips such triangles instead of failing the frame.
	ErrSingularAffine = errors.New("singular affine transform")
)
