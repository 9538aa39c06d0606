package resource

import "fmt"

type Type uint8

const (
	TypeFont Type = iota
	TypeBitmap
)

func (t Type) String() string {
	switch t {
	case TypeFont:
		return "Type(Font)"
	case TypeBitmap:
		return "Type(Bitmap)"
	}
	return "Type(UNKNOWN)"
}

// UnknownError reports a lookup for a resource that is not registered.
type UnknownError struct {
	Type Type
	Key  string
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown resource %s %q", e.Type, e.Key)
}
