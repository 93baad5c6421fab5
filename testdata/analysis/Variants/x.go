package x

type Circle struct{ R float64 }

//enumorph:derive
type Shape struct {
	Kind   string `enumorph:"tag"`
	Circle Circle
	Point  struct{}           // want `unit variant Shape.Point has no data to convert to or from; try tagging it with enumorph:"ignore"`
	Pair   struct{ A, B int } // want "only variants with one field are supported; Shape.Pair has 2 fields"
	Origin struct{}           `enumorph:"ignore"`
	Box    int                `enumorph:"skip"` // want `unknown enumorph option "skip" on Shape.Box; only "ignore" is supported`
	Radius float64
	Side   struct{ V float64 } // want "Shape.Radius and Shape.Side both carry float64; conversions would conflict"
}
