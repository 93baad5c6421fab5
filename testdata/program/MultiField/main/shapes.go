package main

//enumorph:derive
type Shape struct {
	Kind string `enumorph:"tag"`
	Rect struct {
		W, H float64
	}
}
