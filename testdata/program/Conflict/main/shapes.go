package main

//enumorph:derive
type Shape struct {
	Kind   string `enumorph:"tag"`
	Circle float64
}

func ShapeToCircle(s Shape) float64 { return s.Circle }
