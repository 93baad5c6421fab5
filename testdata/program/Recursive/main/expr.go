package main

type Tree map[string]Tree

//enumorph:derive
type Expr struct {
	Op  string `enumorph:"tag"`
	Lit int
	Neg *Expr
	Sum struct{ Terms []Expr }
}

//enumorph:derive
type Node struct {
	Kind     string `enumorph:"tag"`
	Children Tree
}
