package main

type Circle struct{ R float64 }

//enumorph:derive
type Shape struct {
	Kind   string `enumorph:"tag"`
	Circle Circle
	Square struct{ Side float64 }
	Empty  struct{} `enumorph:"ignore"`
}
