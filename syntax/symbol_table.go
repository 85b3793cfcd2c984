package syntax

// SymbolTable maps the variable names of a single function to their storage
// slots.  Parameters are declared first, so they take the slots 0 through
// argCount-1, and locals take the following slots in declaration order.  A new
// table is created for each function and passed explicitly through parsing:
// nothing about it outlives the function's AST node.
type SymbolTable struct {
	slots map[string]int
}

// NewSymbolTable creates a new, empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{slots: make(map[string]int)}
}

// Declare allocates the next slot to name.  If name is already declared, no
// slot is allocated and the returned boolean is false.
func (st *SymbolTable) Declare(name string) (int, bool) {
	if _, ok := st.slots[name]; ok {
		return 0, false
	}

	slot := len(st.slots)
	st.slots[name] = slot
	return slot, true
}

// Lookup returns the slot of a declared name.  The returned boolean is false if
// the name has not been declared.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	slot, ok := st.slots[name]
	return slot, ok
}

// Count returns the number of slots allocated so far.
func (st *SymbolTable) Count() int {
	return len(st.slots)
}
