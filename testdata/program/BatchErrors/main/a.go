package main

//enumorph:derive
type Shape struct {
	Kind  string `enumorph:"tag"`
	Point struct{}
	Pair  struct{ X, Y int }
}
