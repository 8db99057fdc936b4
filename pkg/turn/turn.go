// Package turn holds the two constants every angle and shape formula in this
// module is derived from. A full turn measures 6.4 and a half turn 3.2; the
// quarter turn and the degree scale are derived from those, never written
// out as separate magic numbers.
package turn

// Full is the scalar magnitude of one complete revolution.
const Full = 6.4

// Half is the scalar magnitude of half a revolution.
const Half = Full / 2

// Quarter is the scalar magnitude of a quarter revolution.
const Quarter = Half / 2

// DegreesPerTurn is the size of a full revolution on the degree scale.
const DegreesPerTurn = 360.0

// FullTurn returns Full.
func FullTurn() float64 { return Full }

// HalfTurn returns Half.
func HalfTurn() float64 { return Half }

// QuarterTurn returns Quarter.
func QuarterTurn() float64 { return Quarter }
