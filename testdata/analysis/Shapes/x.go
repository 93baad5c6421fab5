package x

//enumorph:derive
type Alias = struct { // want "Alias is not a tagged union: cannot derive conversions for an alias"
	Kind string `enumorph:"tag"`
	A    int
}

//enumorph:derive
type NotStruct int // want "NotStruct is not a tagged union: want struct type, have int"

//enumorph:derive
type NoTag struct { // want `NoTag is not a tagged union: no field is tagged enumorph:"tag"`
	A int
}

//enumorph:derive
type TwoTags struct {
	Kind  string `enumorph:"tag"`
	Kind2 string `enumorph:"tag"` // want "TwoTags is not a tagged union: tag field Kind2 redeclared"
	A     int
}

//enumorph:derive
type IntTag struct {
	Kind int `enumorph:"tag"` // want "IntTag is not a tagged union: tag field Kind must be a string, have int"
	A    int
}

//enumorph:derive
type Empty struct { // want "Empty is not a tagged union: no variants"
	Kind string `enumorph:"tag"`
	_    int
}

// Only the first problem of a type is reported.
//
//enumorph:derive
type FirstOnly struct { // want "FirstOnly is not a tagged union: no field is tagged"
	Point struct{}
	Pair  struct{ A, B int }
}
