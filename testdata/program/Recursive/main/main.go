//go:build !enumorph

package main

import "fmt"

func eval(e Expr) int {
	if n, err := ExprToLit(e); err == nil {
		return n
	}
	if inner, err := ExprToNeg(e); err == nil {
		return -eval(*inner)
	}
	terms, _ := ExprToSum(e)
	total := 0
	for _, term := range terms {
		total += eval(term)
	}
	return total
}

func main() {
	two := ExprFromLit(2)
	e := ExprFromSum([]Expr{ExprFromNeg(&two), ExprFromLit(5)})
	fmt.Println(e.Op, eval(e))

	n := NodeFromChildren(Tree{"a": Tree{"b": nil}})
	children, err := NodeToChildren(n)
	fmt.Println(n.Kind, len(children["a"]), err)

	_, err = NodeToChildren(Node{})
	fmt.Println(err)
}
