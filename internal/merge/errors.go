package merge

import (
	"fmt"
	"strings"
)

// Input identifies one of the merge inputs in error reports. Values double as
// localization message keys.
type Input string

const (
	InputLab         Input = "input.lab"
	InputEpi         Input = "input.epi"
	InputPiranha     Input = "input.piranha"
	InputDestination Input = "input.destination"
	InputRunNumber   Input = "input.run_number"
)

// MissingInputError reports inputs the operator did not supply. The merge is
// never attempted with a partial input set.
type MissingInputError struct {
	Inputs []Input
}

func (e *MissingInputError) Error() string {
	names := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		names[i] = string(in)
	}
	return fmt.Sprintf("missing inputs: %s", strings.Join(names, ", "))
}

// SchemaError reports every required column absent from one input file.
type SchemaError struct {
	Input   Input
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing columns: %s", e.Input, strings.Join(e.Missing, ", "))
}

// JoinMismatchError indicates the key columns of the two primary tables are
// not identical, so a row-for-row merge would silently misalign samples.
type JoinMismatchError struct {
	Left  Input
	Right Input
	Keys  []string
}

func (e *JoinMismatchError) Error() string {
	return fmt.Sprintf("%s and %s disagree on columns %s", e.Left, e.Right, strings.Join(e.Keys, ", "))
}

// InvalidOptionError reports an operator value outside a closed option set.
type InvalidOptionError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%s: %q is not one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}
