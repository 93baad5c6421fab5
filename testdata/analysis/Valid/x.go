package x

import "fmt"

type Circle struct{ R float64 }

//enumorph:derive
type Shape struct {
	Kind   string `enumorph:"tag"`
	Circle Circle
	Square struct{ Side float64 }
	Empty  struct{}           `enumorph:"ignore"`
	Pair   struct{ A, B int } `enumorph:"ignore"`
	_      int
}

//enumorph:derive
type (
	Either[L fmt.Stringer, R any] struct {
		Side  string `enumorph:"tag"`
		Left  L
		Right struct{ Value R }
	}

	Token struct {
		Kind Kind `enumorph:"tag"`
		Word string
		Num  struct{ N int }
	}
)

type Kind string

type NotAnnotated int

type Tree map[string]Tree

//enumorph:derive
type Expr struct {
	Op   string `enumorph:"tag"`
	Lit  int
	Neg  *Expr
	Tree Tree
	Ref  *Circle
	Val  Circle
}

//enumorph:derive
type Foo struct {
	Kind string `enumorph:"tag"`
	Bar  Bar
}

//enumorph:derive
type Bar struct {
	Kind string `enumorph:"tag"`
	Foo  *Foo
}

//enumorph:derive
type (
	//enumorph:derive
	Left struct {
		Kind  string `enumorph:"tag"`
		Value int
	}
)
