package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparator is a strict total order over two elements.
// Assume i is the new element.
//  1. i == j, return 0
//  2. i > j, return a positive number, turn to right part.
//  3. i < j, return a negative number, turn to left part.
//
// Elements which compare equal are treated as the same key.
type Comparator[E any] func(i, j E) int64

// Probe compares a search key (captured by the closure) with
// an element, following the same sign convention as Comparator.
type Probe[E any] func(elem E) int64

// Reverse flips the order of the comparator.
func (cmp Comparator[E]) Reverse() Comparator[E] {
	return func(i, j E) int64 {
		return cmp(j, i)
	}
}

// ProbeOf binds i as the left operand of the comparator.
func (cmp Comparator[E]) ProbeOf(i E) Probe[E] {
	return func(elem E) int64 {
		return cmp(i, elem)
	}
}

// NaturalOrder returns the ascending order of the ordered key.
// NaN is not a valid float key.
func NaturalOrder[K OrderedKey]() Comparator[K] {
	return func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
}

func ReverseOrder[K OrderedKey]() Comparator[K] {
	return NaturalOrder[K]().Reverse()
}
