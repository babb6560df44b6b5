package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alfredjeanlab/classkit/internal/logic"
	"github.com/alfredjeanlab/classkit/internal/ui"
)

const simulatorHeader = "--- Logic Gate Simulator ---"

func printSimulationText(w io.Writer, r logic.Result) error {
	var b strings.Builder
	fmt.Fprintln(&b, simulatorHeader)
	fmt.Fprintf(&b, "Inputs: A=%d, B=%d\n", r.A.Int(), r.B.Int())
	fmt.Fprintf(&b, "A AND B = %d\n", r.And.Int())
	fmt.Fprintf(&b, "A OR B  = %d\n", r.Or.Int())
	fmt.Fprintf(&b, "NOT A   = %d\n", r.NotA.Int())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write simulation: %w", err)
	}
	return nil
}

type simulationJSON struct {
	Inputs struct {
		A logic.Bit `json:"a"`
		B logic.Bit `json:"b"`
	} `json:"inputs"`
	And  logic.Bit `json:"and"`
	Or   logic.Bit `json:"or"`
	NotA logic.Bit `json:"not_a"`
}

func printSimulationJSON(w io.Writer, r logic.Result) error {
	var out simulationJSON
	out.Inputs.A, out.Inputs.B = r.A, r.B
	out.And, out.Or, out.NotA = r.And, r.Or, r.NotA
	return writeJSON(w, out)
}

type tableJSON struct {
	Gate string      `json:"gate"`
	Rows []logic.Row `json:"rows"`
}

func printTablesJSON(w io.Writer, gates []logic.Gate) error {
	out := make([]tableJSON, len(gates))
	for i, g := range gates {
		out[i] = tableJSON{Gate: g.Name, Rows: logic.TruthTable(g)}
	}
	return writeJSON(w, out)
}

// inputNames labels gate inputs A, B, ... in order.
const inputNames = "ABCDEFGH"

func printTablesText(w io.Writer, s ui.Styler, gates []logic.Gate) error {
	var b strings.Builder
	for i, g := range gates {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Accent(g.Name) + "\n")

		rows := logic.TruthTable(g)
		lines := alignTable(g.Arity, rows)

		// Color is applied after alignment so escape codes do not skew
		// tabwriter's column widths.
		b.WriteString(s.Muted(lines[0]) + "\n")
		for j, line := range lines[1:] {
			cut := strings.LastIndexByte(line, ' ') + 1
			b.WriteString(line[:cut] + s.Bit(rows[j].Output.Bool(), line[cut:]) + "\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write tables: %w", err)
	}
	return nil
}

// alignTable returns the header line followed by one line per row, with
// columns aligned by tabwriter.
func alignTable(arity int, rows []logic.Row) []string {
	var tb strings.Builder
	tw := tabwriter.NewWriter(&tb, 0, 0, 2, ' ', 0)

	header := make([]string, 0, arity+1)
	for j := 0; j < arity; j++ {
		header = append(header, inputNames[j:j+1])
	}
	header = append(header, "OUT")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		cells := make([]string, 0, len(row.Inputs)+1)
		for _, in := range row.Inputs {
			cells = append(cells, in.String())
		}
		cells = append(cells, row.Output.String())
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	return strings.Split(strings.TrimSuffix(tb.String(), "\n"), "\n")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
