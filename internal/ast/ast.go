// Package ast contains the statements produced by parsing a register description file.
package ast

// Statement is a single top level statement of a register description file.
// It is either a *Comment or a *Register.
type Statement interface {
	statement()
}

// Comment is a line comment. It carries no data.
type Comment struct {
	Line int
}

// Register declares a register with its bit width and declared bitfields.
type Register struct {
	Name   string
	Bits   uint32
	Fields []Bitfield // in authored order, expected high to low
	Array  *Range     // set for "array [from..to] of" declarations
	Line   int
}

// Bitfield is a declared inclusive bit range. An empty name declares an
// anonymous field.
type Bitfield struct {
	From uint32
	To   uint32
	Name string
}

// Range is an inclusive index range of a register array declaration.
type Range struct {
	From uint32
	To   uint32
}

func (*Comment) statement()  {}
func (*Register) statement() {}
