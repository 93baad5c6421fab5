//go:build !enumorph

package main

import (
	"fmt"
	"time"

	"example.com/Imports/geo"
)

func main() {
	e := EventFromMoved(&geo.Point{X: 1, Y: 2})
	p, err := EventToMoved(e)
	fmt.Println(e.Kind, *p, err)

	e = EventFromWait(3 * time.Second)
	d, err := EventToWait(e)
	fmt.Println(e.Kind, d, err)

	e = EventFromTags([]string{"a", "b"})
	tags, err := EventToTags(e)
	fmt.Println(e.Kind, tags, err)
}
