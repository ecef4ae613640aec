package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sprintboard/internal/validation"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emit prints v as JSON when --json is set, otherwise the text lines.
func emit(w io.Writer, flags *globalFlags, v any, text ...string) error {
	if flags.jsonOutput {
		return printJSON(w, v)
	}
	for _, line := range text {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func parseIDArg(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.Invalid(name, fmt.Sprintf("must be a positive integer, got %q", raw))
	}
	return id, nil
}

func formatAssignees(assignees []string) string {
	if len(assignees) == 0 {
		return "-"
	}
	return strings.Join(assignees, ", ")
}
