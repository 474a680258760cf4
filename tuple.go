package rel

// Tuple2 is a row with two anonymous attributes.  Named structs are usually
// a better choice for rows; the tuples are for short lived intermediate
// results, where declaring a type for every step would be noise.
type Tuple2[A, B comparable] struct {
	V0 A
	V1 B
}

// Tuple3 is a row with three anonymous attributes.
type Tuple3[A, B, C comparable] struct {
	V0 A
	V1 B
	V2 C
}

// Tup2 makes a Tuple2.
func Tup2[A, B comparable](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{a, b}
}

// Tup3 makes a Tuple3.
func Tup3[A, B, C comparable](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{a, b, c}
}
