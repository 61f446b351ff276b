package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInInterval checks if a value is within the half-open interval [lo, hi).
func IsInInterval[T number](lo T, value T, hi T) bool {
	return lo <= value && value < hi
}
