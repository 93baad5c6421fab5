package main

//enumorph:derive
type Shape struct {
	Circle float64
}
