package lspace

import "fmt"

// IndentMode selects which lines of a flow are indented.
type IndentMode uint8

const (
	// IndentNone leaves every line at the flow's left edge.
	IndentNone IndentMode = iota
	// IndentFirst offsets only the first line.
	IndentFirst
	// IndentExceptFirst offsets every line after the first.
	IndentExceptFirst
)

// FlowIndent is the indentation policy of a Flow node.
type FlowIndent struct {
	mode   IndentMode
	amount float64
}

// noIndent is shared by every flow built without an indent.
var noIndent = FlowIndent{mode: IndentNone}

// NoIndent returns the shared policy that indents no line.
func NoIndent() FlowIndent {
	return noIndent
}

// IndentFirstLine returns a policy that offsets the first line by amount.
func IndentFirstLine(amount float64) (FlowIndent, error) {
	if err := checkNonNegative("indent", amount); err != nil {
		return FlowIndent{}, err
	}
	return FlowIndent{mode: IndentFirst, amount: amount}, nil
}

// IndentAllButFirstLine returns a policy that offsets every line except the
// first by amount (a hanging indent).
func IndentAllButFirstLine(amount float64) (FlowIndent, error) {
	if err := checkNonNegative("indent", amount); err != nil {
		return FlowIndent{}, err
	}
	return FlowIndent{mode: IndentExceptFirst, amount: amount}, nil
}

// Mode returns which lines are indented.
func (f FlowIndent) Mode() IndentMode { return f.mode }

// Amount returns the indent distance. Zero for IndentNone.
func (f FlowIndent) Amount() float64 { return f.amount }

// lineOffsets returns the starting x of the first line and of every later line.
func (f FlowIndent) lineOffsets() (first, rest float64) {
	switch f.mode {
	case IndentFirst:
		return f.amount, 0
	case IndentExceptFirst:
		return 0, f.amount
	default:
		return 0, 0
	}
}

// String returns a short description of the policy.
func (f FlowIndent) String() string {
	switch f.mode {
	case IndentFirst:
		return fmt.Sprintf("first(%g)", f.amount)
	case IndentExceptFirst:
		return fmt.Sprintf("except-first(%g)", f.amount)
	default:
		return "none"
	}
}
