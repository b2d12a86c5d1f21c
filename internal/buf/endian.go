// Package buf contains helpers for endian-safe decoding routines.
package buf

// Order is a fixed wire byte order.
type Order uint8

const (
	// BigEndian places the most significant byte first.
	BigEndian Order = iota
	// LittleEndian places the least significant byte first.
	LittleEndian
)

func (o Order) String() string {
	if o == LittleEndian {
		return "le"
	}
	return "be"
}

// Word is the set of unsigned integer types Combine can assemble.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Combine folds b into a single word in the given order, shifting by 8 bits
// per byte. Callers pass exactly the width of T; extra high bytes are shifted
// out.
func Combine[T Word](b []byte, o Order) T {
	var v T
	if o == BigEndian {
		for _, x := range b {
			v = v<<8 | T(x)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | T(b[i])
	}
	return v
}

// Split is the inverse of Combine: it writes v into b using len(b) bytes.
func Split[T Word](b []byte, v T, o Order) {
	n := len(b)
	for i := 0; i < n; i++ {
		x := byte(v)
		v >>= 8
		if o == BigEndian {
			b[n-1-i] = x
		} else {
			b[i] = x
		}
	}
}
