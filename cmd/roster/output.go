package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alfredjeanlab/classkit/internal/model"
)

const rosterHeader = "--- Student Database ---"

func printRosterText(w io.Writer, roster *model.Roster) error {
	if _, err := fmt.Fprintln(w, rosterHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return roster.Display(w)
}

func printRosterJSON(w io.Writer, roster *model.Roster) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(roster.Records()); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return nil
}
