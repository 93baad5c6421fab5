//go:build !enumorph

package main

import "fmt"

func main() {
	t := tokenFromWord("hello")
	word, err := tokenToWord(t)
	fmt.Println(t.kind, word, err)

	t = tokenFromNum(7)
	n, err := tokenToNum(t)
	fmt.Println(t.kind, n, err)

	_, err = tokenToWord(t)
	fmt.Println(err)
}
