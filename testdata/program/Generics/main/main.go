//go:build !enumorph

package main

import "fmt"

func main() {
	e := EitherFromLeft[Name, int]("alice")
	fmt.Println(e.Side, e.Left)

	l, err := EitherToLeft(e)
	fmt.Println(l, err)

	_, err = EitherToRight(e)
	fmt.Println(err != nil)

	e = EitherFromRight[Name](42)
	r, err := EitherToRight(e)
	fmt.Println(e.Side, r, err)
}
