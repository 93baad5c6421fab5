package main

type kind string

//enumorph:derive
type token struct {
	kind kind `enumorph:"tag"`
	word string
	num  struct{ n int }
}
