package safecast

// Constraints below mirror golang.org/x/exp/constraints so that packages only depending on safecast
// can be generic over numbers.

// ISignedInteger matches every signed integer type.
type ISignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IUnsignedInteger matches every unsigned integer type, uintptr included.
type IUnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type IInteger interface {
	ISignedInteger | IUnsignedInteger
}

type IFloat interface {
	~float32 | ~float64
}

// INumber matches any type the arithmetic operators apply to.
type INumber interface {
	IInteger | IFloat
}

// IConvertable matches the types the casting functions accept.
type IConvertable interface {
	INumber
}
