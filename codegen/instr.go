package codegen

import (
	"fmt"
	"strconv"
)

// OpCode is the operation of a single Morpho VM instruction.
type OpCode int

// Enumeration of opcodes.
const (
	OpMakeVal OpCode = iota // Load a literal into the accumulator.
	OpFetch                 // Load a variable slot into the accumulator.
	OpStore                 // Store the accumulator into a slot.
	OpPush                  // Push the accumulator onto the stack.
	OpCall                  // Call a function.
	OpReturn                // Return the accumulator from the function.
	OpGo                    // Jump unconditionally.
	OpGoFalse               // Jump if the accumulator is false.
	OpLabel                 // A jump target (pseudo-instruction).
)

// Instr is a single instruction.  Which fields are meaningful depends on the
// opcode: Text is the literal of MakeVal and the callee of Call; N is the slot
// of Fetch and Store, the arity of Call, and the label number of Go, GoFalse,
// and Label.
type Instr struct {
	Op   OpCode
	Text string
	N    int
}

// FuncName returns the name a function with the given arity is exported and
// called by in Morpho assembly: eg. `f[f2]`.
func FuncName(name string, arity int) string {
	return name + "[f" + strconv.Itoa(arity) + "]"
}

// LabelName returns the assembly name of a label number.
func LabelName(n int) string {
	return "_" + strconv.Itoa(n)
}

// String returns the instruction in Morpho assembly syntax.
func (in Instr) String() string {
	switch in.Op {
	case OpMakeVal:
		return "(MakeVal " + in.Text + ")"
	case OpFetch:
		return fmt.Sprintf("(Fetch %d)", in.N)
	case OpStore:
		return fmt.Sprintf("(Store %d)", in.N)
	case OpPush:
		return "(Push)"
	case OpCall:
		return fmt.Sprintf("(Call #\"%s\" %d)", FuncName(in.Text, in.N), in.N)
	case OpReturn:
		return "(Return)"
	case OpGo:
		return "(Go " + LabelName(in.N) + ")"
	case OpGoFalse:
		return "(GoFalse " + LabelName(in.N) + ")"
	case OpLabel:
		return LabelName(in.N) + ":"
	}

	return fmt.Sprintf("<bad opcode %d>", in.Op)
}
