package nist

// Endianness selects the byte order Int uses when marshaling.
type Endianness int

const (
	// BigEndian marshals the integer most-significant byte first.
	// It is the zero value, matching Int's default before BO is set.
	BigEndian Endianness = iota
	// LittleEndian marshals the integer least-significant byte first.
	LittleEndian
)
