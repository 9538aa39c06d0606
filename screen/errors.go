package screen

// Error is a status reported by the raster primitives.
type Error uint8

const (
	ErrInvalidCoordinate Error = iota + 1
	ErrInvalidParameter
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidCoordinate:
		return "invalid coordinate"
	case ErrInvalidParameter:
		return "invalid parameter"
	}
	return "unknown screen error"
}
