package x

//enumorph:derive
type Token struct {
	Kind string `enumorph:"tag"`
	Word string // want "conversion TokenToWord for Token.Word is already declared"
}

func TokenToWord(t Token) string { return t.Word }

//enumorph:derive
type A struct {
	Kind string `enumorph:"tag"`
	ToB  int
}

//enumorph:derive
type ATo struct {
	Kind string `enumorph:"tag"`
	B    int // want "conversion AToToB for ATo.B is already declared"
}
