package broken

// Color declares an extra key without the base key it builds on.
//
//enum:name(extra(plural = "title case plural"))
type Color int

const (
	Red Color = iota
	Blue
)

// Size is valid and still resolves next to the failing Color.
//
//enum:name(base = "title case lower")
type Size int

const (
	Small Size = iota
	Large
)
