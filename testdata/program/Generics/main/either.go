package main

import "fmt"

type Name string

func (n Name) String() string { return string(n) }

//enumorph:derive
type Either[L fmt.Stringer, R any] struct {
	Side  string `enumorph:"tag"`
	Left  L
	Right struct{ Value R }
}
