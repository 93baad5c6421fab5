package main

//enumorph:derive
type Shape struct {
	Kind   string `enumorph:"tag"`
	Circle float64
	Point  struct{}
}
