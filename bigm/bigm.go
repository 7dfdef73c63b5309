package bigm

import "strconv"

// Value is the pair (Finite, Infinite) standing for Finite + Infinite·M.
type Value struct {
	Finite   int64
	Infinite int64
}

// M is exactly one unit of the symbolic big constant.
var M = Value{Infinite: 1}

// Zero is the additive identity.
var Zero = Value{}

// New returns finite + infinite·M.
func New(finite, infinite int64) Value {
	return Value{Finite: finite, Infinite: infinite}
}

// Of returns the purely finite value x.
func Of(x int64) Value {
	return Value{Finite: x}
}

// Add sets v = v + o.
func (v *Value) Add(o Value) {
	v.Finite += o.Finite
	v.Infinite += o.Infinite
}

// Sub sets v = v - o.
func (v *Value) Sub(o Value) {
	v.Finite -= o.Finite
	v.Infinite -= o.Infinite
}

// Neg sets v = -v.
func (v *Value) Neg() {
	v.Finite = -v.Finite
	v.Infinite = -v.Infinite
}

// ScaledAdd sets v = v + k·o.
func (v *Value) ScaledAdd(k int64, o Value) {
	v.Finite += k * o.Finite
	v.Infinite += k * o.Infinite
}

// Plus returns v + o without touching v.
func (v Value) Plus(o Value) Value {
	v.Add(o)
	return v
}

// Minus returns v - o without touching v.
func (v Value) Minus(o Value) Value {
	v.Sub(o)
	return v
}

// Negated returns -v without touching v.
func (v Value) Negated() Value {
	v.Neg()
	return v
}

// Times returns k·v.
func (v Value) Times(k int64) Value {
	return Value{Finite: k * v.Finite, Infinite: k * v.Infinite}
}

// Cmp compares v and o and returns -1, 0 or +1.
// The Infinite component decides first; Finite only breaks ties.
func (v Value) Cmp(o Value) int {
	switch {
	case v.Infinite < o.Infinite:
		return -1
	case v.Infinite > o.Infinite:
		return 1
	case v.Finite < o.Finite:
		return -1
	case v.Finite > o.Finite:
		return 1
	}

	return 0
}

// Sign returns -1, 0 or +1 following the same ordering as Cmp.
func (v Value) Sign() int {
	return v.Cmp(Zero)
}

// IsNegative reports whether v < 0.
func (v Value) IsNegative() bool {
	return v.Infinite < 0 || (v.Infinite == 0 && v.Finite < 0)
}

// IsInfinite reports whether the M component is non-zero.
func (v Value) IsInfinite() bool {
	return v.Infinite != 0
}

// IsZero reports whether both components are zero.
func (v Value) IsZero() bool {
	return v.Infinite == 0 && v.Finite == 0
}

// String renders v as "F", "kM", "kM+F" or "kM-F".
func (v Value) String() string {
	if v.Infinite == 0 {
		return strconv.FormatInt(v.Finite, 10)
	}
	var buf []byte
	switch v.Infinite {
	case 1:
	case -1:
		buf = append(buf, '-')
	default:
		buf = strconv.AppendInt(buf, v.Infinite, 10)
	}
	buf = append(buf, 'M')
	if v.Finite > 0 {
		buf = append(buf, '+')
	}
	if v.Finite != 0 {
		buf = strconv.AppendInt(buf, v.Finite, 10)
	}

	return string(buf)
}
