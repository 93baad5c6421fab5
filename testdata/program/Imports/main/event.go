package main

import (
	"time"

	"example.com/Imports/geo"
)

//enumorph:derive
type Event struct {
	Kind  string `enumorph:"tag"`
	Moved *geo.Point
	Wait  struct{ D time.Duration }
	Tags  []string
}
