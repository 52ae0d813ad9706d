// Package orient provides value types for representing orientation: Quaternion, a general
// quaternion under the Hamilton convention, and UnitQuaternion, a quaternion constrained to
// unit length that represents a rotation in 3D space without gimbal-lock singularities.
// The subpackage angle holds the scalar angle-wrapping utilities that usually accompany
// rotation code.
//
// The low-level quaternion arithmetic (multiplication, conjugation, inversion, norms) is
// delegated to gonum's quat package; the types here only layer coefficient storage, precision
// handling, and the unit-norm invariant on top of it.
package orient

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float covers the scalar types a quaternion can be instantiated with. Coefficients are kept
// in this type; the algebraic kernel always computes in float64, so float32 instantiations
// round at every operation boundary.
type Float = constraints.Float

// NormTolerance is how far a quaternion's norm may stray from 1 before the validating
// UnitQuaternion constructors consider it off the unit 3-sphere.
const NormTolerance = 1e-6

// CheckUnitNorm toggles unit-norm validation on the UnitQuaternion constructors and checked
// setters. With validation off, those paths silently accept off-manifold values, the same way
// a release build of an assertion-based library would. It is a process-wide setting; flip it
// once at startup (or around a test), not concurrently with quaternion construction.
var CheckUnitNorm = true

// assertUnitNorm panics when norm strays from 1 by more than NormTolerance, measured in the
// coefficient type itself so that float32 instantiations are judged in float32 arithmetic.
func assertUnitNorm[T Float](norm T) {
	if !CheckUnitNorm {
		return
	}
	if diff := norm - 1; diff > NormTolerance || diff < -NormTolerance {
		panic(fmt.Sprintf("orient: quaternion norm %v is not unit length", norm))
	}
}
