package orient

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RotationTween animates between two rotations over a duration, easing the interpolation
// parameter with a gween easing curve and slerping the orientation. Since the easing only
// shapes the parameter and the orientation comes from a closed slerp, every value the tween
// emits is a valid unit quaternion.
type RotationTween[T Float] struct {
	from, to UnitQuaternion[T]
	tween    *gween.Tween
}

// NewRotationTween creates a tween that rotates from one orientation to the other over
// duration seconds (or whatever unit the caller advances it in), applying the given easing
// function, e.g. ease.Linear or ease.InOutQuad.
func NewRotationTween[T Float](from, to UnitQuaternion[T], duration float32, easing ease.TweenFunc) *RotationTween[T] {
	return &RotationTween[T]{
		from:  from,
		to:    to,
		tween: gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt and returns the current orientation, along with whether the
// tween has finished. Once finished, the target orientation is returned exactly.
func (rt *RotationTween[T]) Update(dt float32) (UnitQuaternion[T], bool) {
	t, finished := rt.tween.Update(dt)
	if finished {
		return rt.to, true
	}
	return rt.from.Slerp(rt.to, T(t)), false
}

// Reset rewinds the tween to the starting orientation.
func (rt *RotationTween[T]) Reset() {
	rt.tween.Reset()
}
