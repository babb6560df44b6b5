package logic

// Row is one line of a truth table.
type Row struct {
	Inputs []Bit `json:"inputs"`
	Output Bit   `json:"output"`
}

// TruthTable enumerates every input combination for g in binary counting
// order, with the first input as the most significant bit.
func TruthTable(g Gate) []Row {
	n := 1 << g.Arity
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		in := make([]Bit, g.Arity)
		for j := range in {
			in[j] = FromInt(i >> (g.Arity - 1 - j) & 1)
		}
		rows = append(rows, Row{Inputs: in, Output: g.eval(in)})
	}
	return rows
}

// Result holds the outputs of the two-input sample run.
type Result struct {
	A    Bit
	B    Bit
	And  Bit
	Or   Bit
	NotA Bit
}

// Simulate evaluates AND and OR over a and b, and NOT over a.
func Simulate(a, b Bit) Result {
	return Result{
		A:    a,
		B:    b,
		And:  And(a, b),
		Or:   Or(a, b),
		NotA: Not(a),
	}
}
