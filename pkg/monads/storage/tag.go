package storage

// Tag names the live alternative of a Pair.
type Tag uint8

const (
	// Value is the zero tag, so a zero Pair holds the zero value.
	Value Tag = iota
	Error
	Empty
)

func (t Tag) String() string {
	switch t {
	case Value:
		return "value"
	case Error:
		return "error"
	case Empty:
		return "empty"
	}
	return "tag(?)"
}
