package main

//enumorph:derive
type Color int

//enumorph:derive
type Token struct {
	Kind string `enumorph:"tag"`
	Word string
	Text string
}
