package orient

import (
	"gonum.org/v1/gonum/num/quat"
)

// UnitQuaternion represents a rotation in 3D space as a quaternion of unit length. It owns a
// Quaternion by value and guards it: every validating constructor and setter checks that the
// norm is within NormTolerance of 1 (while CheckUnitNorm is on) and panics otherwise, so a
// UnitQuaternion reached through those paths always lies on the unit 3-sphere.
//
// The zero value of UnitQuaternion is the zero quaternion, which is not a valid rotation; use
// Identity for the no-rotation default.
type UnitQuaternion[T Float] struct {
	q Quaternion[T]
}

// UnitQuaternionF and UnitQuaternionD are the single- and double-precision instantiations of
// UnitQuaternion.
type (
	UnitQuaternionF = UnitQuaternion[float32]
	UnitQuaternionD = UnitQuaternion[float64]
)

// Identity returns the identity rotation, the unit quaternion {1, 0, 0, 0}.
func Identity[T Float]() UnitQuaternion[T] {
	return UnitQuaternion[T]{q: Quaternion[T]{W: 1}}
}

// NewUnitQuaternion creates a UnitQuaternion out of the given coefficients, which must
// already form a unit-length quaternion; the coefficients are not renormalized. Panics if
// they don't and CheckUnitNorm is on.
func NewUnitQuaternion[T Float](w, x, y, z T) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: NewQuaternion(w, x, y, z)}
	assertUnitNorm(u.Norm())
	return u
}

// UnitFromQuaternion creates a UnitQuaternion out of an already unit-length Quaternion
// without renormalizing it. Use Quaternion.ToUnit to promote a quaternion of arbitrary norm.
// Panics on a non-unit input while CheckUnitNorm is on.
func UnitFromQuaternion[T Float](q Quaternion[T]) UnitQuaternion[T] {
	u := UnitQuaternion[T]{q: q}
	assertUnitNorm(u.Norm())
	return u
}

// UnitFromImplementation creates a UnitQuaternion out of an already unit-length kernel
// quaternion. Panics on a non-unit input while CheckUnitNorm is on.
func UnitFromImplementation[T Float](impl quat.Number) UnitQuaternion[T] {
	return UnitFromQuaternion(QuaternionFromImplementation[T](impl))
}

// CastUnitQuaternion converts a UnitQuaternion between coefficient precisions and re-checks
// the unit-norm invariant in the target precision. Narrowing is lossy, but the rounding error
// on a genuinely unit input stays well inside NormTolerance.
func CastUnitQuaternion[T, S Float](u UnitQuaternion[S]) UnitQuaternion[T] {
	out := UnitQuaternion[T]{q: CastQuaternion[T](u.q)}
	assertUnitNorm(out.Norm())
	return out
}

// W returns the scalar coefficient.
func (u UnitQuaternion[T]) W() T { return u.q.W }

// X returns the first vector coefficient.
func (u UnitQuaternion[T]) X() T { return u.q.X }

// Y returns the second vector coefficient.
func (u UnitQuaternion[T]) Y() T { return u.q.Y }

// Z returns the third vector coefficient.
func (u UnitQuaternion[T]) Z() T { return u.q.Z }

// Quaternion returns a copy of the owned quaternion as the unconstrained type.
func (u UnitQuaternion[T]) Quaternion() Quaternion[T] {
	return u.q
}

// Implementation returns the rotation in the kernel's representation.
func (u UnitQuaternion[T]) Implementation() quat.Number {
	return u.q.Implementation()
}

// Norm returns the Euclidean norm of the owned quaternion. Through the validated paths this
// is 1 within NormTolerance.
func (u UnitQuaternion[T]) Norm() T {
	return u.q.Norm()
}

// Set copies the coefficients of q into u and re-checks the unit-norm invariant. This is the
// checked element-wise assignment from the unconstrained type; panics on a non-unit input
// while CheckUnitNorm is on.
func (u *UnitQuaternion[T]) Set(q Quaternion[T]) {
	u.q = q
	assertUnitNorm(u.Norm())
}

// SetUnit copies another UnitQuaternion into u. No check runs; the source already holds the
// invariant.
func (u *UnitQuaternion[T]) SetUnit(other UnitQuaternion[T]) {
	u.q = other.q
}

// Raw returns a pointer to the owned quaternion for direct in-place coefficient writes. This
// is the unchecked escape hatch for call sites that cannot afford validation: nothing
// re-checks the invariant afterwards, and a write that leaves the unit 3-sphere silently
// corrupts the rotation. The caller is responsible for keeping the value unit length.
func (u *UnitQuaternion[T]) Raw() *Quaternion[T] {
	return &u.q
}

// Conjugate returns the conjugate rotation, the rotation by the same angle about the opposite
// axis. Conjugation preserves the norm, so the result is unit by algebra; the constructor
// still re-asserts it to catch regressions.
func (u UnitQuaternion[T]) Conjugate() UnitQuaternion[T] {
	return UnitFromQuaternion(u.q.Conjugate())
}

// Inverse returns the inverse rotation. For a unit quaternion the inverse coincides with the
// conjugate, so no division is involved.
func (u UnitQuaternion[T]) Inverse() UnitQuaternion[T] {
	return u.Conjugate()
}

// Mul returns the Hamilton product u * other. Unit quaternions are closed under
// multiplication, so the result is again a UnitQuaternion.
func (u UnitQuaternion[T]) Mul(other UnitQuaternion[T]) UnitQuaternion[T] {
	return UnitQuaternion[T]{q: u.q.Mul(other.q)}
}

// MulQuaternion returns the Hamilton product u * q. The general factor voids the unit-length
// guarantee, so the result is a plain Quaternion.
func (u UnitQuaternion[T]) MulQuaternion(q Quaternion[T]) Quaternion[T] {
	return u.q.Mul(q)
}

// RotateVector rotates the vector (x, y, z) by the rotation u, conjugating the pure
// quaternion p = xi + yj + zk as u * p * u'.
func (u UnitQuaternion[T]) RotateVector(x, y, z T) (T, T, T) {
	impl := u.Implementation()
	p := quat.Number{Imag: float64(x), Jmag: float64(y), Kmag: float64(z)}
	r := quat.Mul(quat.Mul(impl, p), quat.Conj(impl))
	return T(r.Imag), T(r.Jmag), T(r.Kmag)
}

// Slerp returns the spherical linear interpolation from u towards other by t, along the
// shorter arc. The geodesic between two rotations stays on the unit 3-sphere, so the result
// is again a UnitQuaternion.
func (u UnitQuaternion[T]) Slerp(other UnitQuaternion[T], t T) UnitQuaternion[T] {
	return UnitQuaternion[T]{q: u.q.Slerp(other.q, t)}
}

// Equals returns true if the two rotations have exactly equal coefficients. Note that a
// rotation and its negation represent the same physical rotation but do not compare equal.
func (u UnitQuaternion[T]) Equals(other UnitQuaternion[T]) bool {
	return u.q.Equals(other.q)
}

// String returns the rotation as a readable string.
func (u UnitQuaternion[T]) String() string {
	return u.q.String()
}
