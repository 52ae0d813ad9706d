package orient

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion represents a general quaternion Q = W + X*i + Y*j + Z*k under the Hamilton
// convention (i*i = j*j = k*k = i*j*k = -1). Unlike UnitQuaternion, a Quaternion carries no
// constraint at all; its norm can be anything, including zero. The coefficient fields are
// exported and freely writable, since there is no invariant to protect.
// Quaternions are plain values; copy them rather than storing pointers to them.
type Quaternion[T Float] struct {
	W, X, Y, Z T
}

// QuaternionF and QuaternionD are the single- and double-precision instantiations of
// Quaternion.
type (
	QuaternionF = Quaternion[float32]
	QuaternionD = Quaternion[float64]
)

// NewQuaternion creates a new Quaternion out of the given coefficients. No validation is
// performed; the zero value of Quaternion is the zero quaternion.
func NewQuaternion[T Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// QuaternionFromImplementation creates a Quaternion out of the kernel representation,
// rounding each coefficient into T.
func QuaternionFromImplementation[T Float](impl quat.Number) Quaternion[T] {
	return Quaternion[T]{W: T(impl.Real), X: T(impl.Imag), Y: T(impl.Jmag), Z: T(impl.Kmag)}
}

// QuaternionFromUnit copies the coefficients out of a UnitQuaternion. The result is
// numerically unit-length at the moment of the copy, but being a plain Quaternion it carries
// no ongoing guarantee.
func QuaternionFromUnit[T Float](u UnitQuaternion[T]) Quaternion[T] {
	return u.q
}

// CastQuaternion converts a Quaternion between coefficient precisions by casting each
// coefficient individually. Narrowing (float64 to float32) is silent and lossy.
func CastQuaternion[T, S Float](q Quaternion[S]) Quaternion[T] {
	return Quaternion[T]{W: T(q.W), X: T(q.X), Y: T(q.Y), Z: T(q.Z)}
}

// Implementation returns the quaternion in the kernel's representation, a gonum quat.Number.
func (q Quaternion[T]) Implementation() quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// Conjugate returns the conjugate of the quaternion (the vector part negated).
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return QuaternionFromImplementation[T](quat.Conj(q.Implementation()))
}

// Inverse returns the multiplicative inverse of the quaternion, the conjugate divided by the
// squared norm. The inverse of the zero quaternion follows the kernel and comes back with
// non-finite coefficients.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return QuaternionFromImplementation[T](quat.Inv(q.Implementation()))
}

// Mul returns the Hamilton product q * other.
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	return QuaternionFromImplementation[T](quat.Mul(q.Implementation(), other.Implementation()))
}

// MulUnit returns the Hamilton product q * u. Mixing a general quaternion into the product
// loses the unit-length guarantee, so the result is a plain Quaternion.
func (q Quaternion[T]) MulUnit(u UnitQuaternion[T]) Quaternion[T] {
	return q.Mul(u.q)
}

// Dot returns the 4-dimensional dot product of the two quaternions' coefficients.
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// Norm returns the Euclidean norm of the four coefficients.
func (q Quaternion[T]) Norm() T {
	return T(quat.Abs(q.Implementation()))
}

// Normalize scales the calling quaternion in place to unit length and returns the receiver
// for chaining. Panics on the zero quaternion, which has no direction to keep.
func (q *Quaternion[T]) Normalize() *Quaternion[T] {
	*q = q.Normalized()
	return q
}

// Normalized returns a unit-length copy of the quaternion, leaving the receiver untouched.
// Panics on the zero quaternion.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	impl := q.Implementation()
	n := quat.Abs(impl)
	if n == 0 {
		panic("orient: cannot normalize a zero quaternion")
	}
	return QuaternionFromImplementation[T](quat.Scale(1/n, impl))
}

// ToUnit normalizes a copy of the quaternion and promotes it to a UnitQuaternion. This is the
// sanctioned path from the unconstrained type to the constrained one; the result is unit by
// construction. Panics on the zero quaternion.
func (q Quaternion[T]) ToUnit() UnitQuaternion[T] {
	return UnitQuaternion[T]{q: q.Normalized()}
}

// Slerp returns the spherical linear interpolation from q towards other by t, taking the
// shorter of the two great-circle arcs. t is clamped to [0, 1]. Both quaternions should be
// unit length for the result to be meaningful.
func (q Quaternion[T]) Slerp(other Quaternion[T], t T) Quaternion[T] {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return other
	}

	if q.Dot(other) < 0 {
		other = Quaternion[T]{W: -other.W, X: -other.X, Y: -other.Y, Z: -other.Z}
	}

	// q * (q^-1 * other)^t walks the geodesic between the two orientations.
	from := q.Implementation()
	delta := quat.Mul(quat.Inv(from), other.Implementation())
	return QuaternionFromImplementation[T](quat.Mul(from, quat.PowReal(delta, float64(t))))
}

// Equals returns true if the two quaternions have exactly equal coefficients.
func (q Quaternion[T]) Equals(other Quaternion[T]) bool {
	return q.W == other.W && q.X == other.X && q.Y == other.Y && q.Z == other.Z
}

// String returns the quaternion as a readable string.
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("{%v, %v, %v, %v}", q.W, q.X, q.Y, q.Z)
}
