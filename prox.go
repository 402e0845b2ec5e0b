package proxgo

import "math"

// SoftThresholdProx is an L1 proximal operator whose element kind is chosen at
// runtime. It holds exactly one typed operator, picked once by New; vectors of
// the other kind are rejected with ErrTypeMismatch.
//
// Use it when vectors arrive behind the Vector interface. Code that knows its
// precision statically should use L1 directly.
type SoftThresholdProx struct {
	kind Kind
	impl typedProx
}

type typedProx interface {
	apply(op string, in Vector, step float64, out Vector) error
	applySteps(op string, in, steps, out Vector) error
	proximal(op string, in Vector, step float64) (Vector, error)
	value(op string, v Vector) (float64, error)
	setStrength(op string, s float64) error
	strength() float64
	setPositive(bool)
	positive() bool
	activeRange() (Range, bool)
	kernel() string
	String() string
}

// New creates a SoftThresholdProx for vectors of the given kind.
//
// Returns ErrInvalidArgument if strength is negative or not finite (also after
// conversion to float32), if kind is unknown, or if an option is malformed.
func New(strength float64, kind Kind, optFns ...Option) (*SoftThresholdProx, error) {
	const op = "new"

	if strength < 0 || math.IsNaN(strength) || math.IsInf(strength, 0) {
		return nil, &ArgumentError{Op: op, Name: "strength", Value: strength}
	}

	var (
		impl typedProx
		err  error
	)

	switch kind {
	case Float32:
		impl, err = newTyped[float32, Float32Vector](op, strength, optFns)
	case Float64:
		impl, err = newTyped[float64, Float64Vector](op, strength, optFns)
	default:
		return nil, &ArgumentError{Op: op, Name: "kind", Value: kind}
	}
	if err != nil {
		return nil, err
	}

	return &SoftThresholdProx{kind: kind, impl: impl}, nil
}

// Kind returns the element kind fixed at construction.
func (p *SoftThresholdProx) Kind() Kind { return p.kind }

// Strength returns the penalization strength.
func (p *SoftThresholdProx) Strength() float64 { return p.impl.strength() }

// SetStrength updates the penalization strength.
func (p *SoftThresholdProx) SetStrength(strength float64) error {
	return p.impl.setStrength("set strength", strength)
}

// Positive reports whether the non-negativity projection is enabled.
func (p *SoftThresholdProx) Positive() bool { return p.impl.positive() }

// SetPositive enables or disables the non-negativity projection.
func (p *SoftThresholdProx) SetPositive(positive bool) { p.impl.setPositive(positive) }

// Range returns the active range and whether one was configured.
func (p *SoftThresholdProx) Range() (Range, bool) { return p.impl.activeRange() }

// Kernel returns the name of the kernel implementation in use.
func (p *SoftThresholdProx) Kernel() string { return p.impl.kernel() }

func (p *SoftThresholdProx) String() string { return p.impl.String() }

// Apply writes the proximal map of coeffsIn into coeffsOut. See L1.Apply.
//
// Returns ErrTypeMismatch if either vector is not of the operator's kind.
func (p *SoftThresholdProx) Apply(coeffsIn Vector, step float64, coeffsOut Vector) error {
	return p.impl.apply("apply", coeffsIn, step, coeffsOut)
}

// ApplySteps is Apply with per-coordinate step sizes. See L1.ApplySteps.
func (p *SoftThresholdProx) ApplySteps(coeffsIn, steps, coeffsOut Vector) error {
	return p.impl.applySteps("apply steps", coeffsIn, steps, coeffsOut)
}

// Proximal returns the proximal map of coeffs in a new vector of the same kind.
func (p *SoftThresholdProx) Proximal(coeffs Vector, step float64) (Vector, error) {
	return p.impl.proximal("proximal", coeffs, step)
}

// Value returns the penalty value over the active range, widened to float64.
// The sum itself runs at the operator's precision.
func (p *SoftThresholdProx) Value(coeffs Vector) (float64, error) {
	return p.impl.value("value", coeffs)
}

// Typed returns the underlying typed operator if the handle was built for T.
func Typed[T Float](p *SoftThresholdProx) (*L1[T], bool) {
	var op any
	switch impl := p.impl.(type) {
	case *typed[float32, Float32Vector]:
		op = impl.op
	case *typed[float64, Float64Vector]:
		op = impl.op
	}
	l1, ok := op.(*L1[T])
	return l1, ok
}

type typed[T Float, V ~[]T] struct {
	kind Kind
	op   *L1[T]
}

func newTyped[T Float, V ~[]T](op string, strength float64, optFns []Option) (*typed[T, V], error) {
	s, err := narrow[T](op, "strength", strength)
	if err != nil {
		return nil, err
	}
	l1, err := NewL1[T](s, optFns...)
	if err != nil {
		return nil, err
	}
	return &typed[T, V]{kind: KindOf[T](), op: l1}, nil
}

// narrow converts v to T, rejecting values that do not survive the conversion.
func narrow[T Float](op, name string, v float64) (T, error) {
	t := T(v)
	if !isFinite(t) && isFinite(v) {
		return 0, &ArgumentError{Op: op, Name: name, Value: v}
	}
	return t, nil
}

func (t *typed[T, V]) vector(op string, v Vector) (V, error) {
	x, ok := v.(V)
	if !ok {
		return nil, &KindError{Op: op, Want: t.kind, Got: kindOfVector(v)}
	}
	return x, nil
}

func (t *typed[T, V]) apply(op string, in Vector, step float64, out Vector) error {
	src, err := t.vector(op, in)
	if err != nil {
		return err
	}
	dst, err := t.vector(op, out)
	if err != nil {
		return err
	}
	s, err := narrow[T](op, "step", step)
	if err != nil {
		return err
	}
	return t.op.Apply([]T(src), s, []T(dst))
}

func (t *typed[T, V]) applySteps(op string, in, steps, out Vector) error {
	src, err := t.vector(op, in)
	if err != nil {
		return err
	}
	st, err := t.vector(op, steps)
	if err != nil {
		return err
	}
	dst, err := t.vector(op, out)
	if err != nil {
		return err
	}
	return t.op.ApplySteps([]T(src), []T(st), []T(dst))
}

func (t *typed[T, V]) proximal(op string, in Vector, step float64) (Vector, error) {
	src, err := t.vector(op, in)
	if err != nil {
		return nil, err
	}
	s, err := narrow[T](op, "step", step)
	if err != nil {
		return nil, err
	}
	out, err := t.op.Proximal([]T(src), s)
	if err != nil {
		return nil, err
	}
	return any(V(out)).(Vector), nil
}

func (t *typed[T, V]) value(op string, v Vector) (float64, error) {
	x, err := t.vector(op, v)
	if err != nil {
		return 0, err
	}
	val, err := t.op.Value([]T(x))
	return float64(val), err
}

func (t *typed[T, V]) setStrength(op string, s float64) error {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return &ArgumentError{Op: op, Name: "strength", Value: s}
	}
	v, err := narrow[T](op, "strength", s)
	if err != nil {
		return err
	}
	return t.op.SetStrength(v)
}

func (t *typed[T, V]) strength() float64          { return float64(t.op.Strength()) }
func (t *typed[T, V]) setPositive(positive bool)  { t.op.SetPositive(positive) }
func (t *typed[T, V]) positive() bool             { return t.op.Positive() }
func (t *typed[T, V]) activeRange() (Range, bool) { return t.op.Range() }
func (t *typed[T, V]) kernel() string             { return t.op.Kernel() }
func (t *typed[T, V]) String() string             { return t.op.String() }
