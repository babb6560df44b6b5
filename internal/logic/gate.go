package logic

import (
	"fmt"
	"strings"
)

// And returns High iff both a and b are High.
func And(a, b Bit) Bit {
	return FromBool(a.Bool() && b.Bool())
}

// Or returns High iff either a or b is High.
func Or(a, b Bit) Bit {
	return FromBool(a.Bool() || b.Bool())
}

// Not inverts a.
func Not(a Bit) Bit {
	return FromBool(!a.Bool())
}

// Nand returns the inverse of And.
func Nand(a, b Bit) Bit { return Not(And(a, b)) }

// Nor returns the inverse of Or.
func Nor(a, b Bit) Bit { return Not(Or(a, b)) }

// Xor returns High iff exactly one of a and b is High.
func Xor(a, b Bit) Bit { return FromBool(a.Bool() != b.Bool()) }

// Xnor returns High iff a and b are equal.
func Xnor(a, b Bit) Bit { return Not(Xor(a, b)) }

// Gate is a named pure boolean function of fixed arity.
type Gate struct {
	Name  string
	Arity int

	eval func(in []Bit) Bit
}

// Eval applies the gate to inputs. The number of inputs must equal Arity.
func (g Gate) Eval(inputs ...Bit) (Bit, error) {
	if len(inputs) != g.Arity {
		return Low, fmt.Errorf("gate %s: want %d inputs, got %d", g.Name, g.Arity, len(inputs))
	}
	return g.eval(inputs), nil
}

func unary(name string, fn func(Bit) Bit) Gate {
	return Gate{Name: name, Arity: 1, eval: func(in []Bit) Bit { return fn(in[0]) }}
}

func binary(name string, fn func(Bit, Bit) Bit) Gate {
	return Gate{Name: name, Arity: 2, eval: func(in []Bit) Bit { return fn(in[0], in[1]) }}
}

// Gates returns every known gate in display order.
func Gates() []Gate {
	return []Gate{
		binary("AND", And),
		binary("OR", Or),
		unary("NOT", Not),
		binary("NAND", Nand),
		binary("NOR", Nor),
		binary("XOR", Xor),
		binary("XNOR", Xnor),
	}
}

// Lookup returns the gate with the given name, ignoring case.
func Lookup(name string) (Gate, bool) {
	for _, g := range Gates() {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Gate{}, false
}
