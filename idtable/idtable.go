// Package idtable implements the Identification Table the Checker uses to
// resolve applied occurrences of identifiers and operators to the
// declaration that introduced them (spec §4.3).
package idtable

// entry's value is `any` rather than ast.Declaration because Triangle also
// binds names that are not Declarations in the Go AST's sum-type sense —
// formal parameters (Const/Var/Proc/Func) occupy a scope exactly like a
// declaration does, but are a distinct sealed interface (ast.FormalParameter)
// so the Checker, not the table, decides what shape it expects back.
type entry struct {
	value     any
	level     int
	duplicate bool
}

// Table is a block-structured symbol table: a flat map from spelling to a
// stack of entries, one per nesting level at which the name was entered.
// openScope/closeScope bracket a level; enter/retrieve operate within it.
type Table struct {
	entries map[string][]entry
	level   int
}

// New returns an empty table at level 0 — the level the Checker enters the
// Standard Environment's declarations into before walking the program.
func New() *Table {
	return &Table{entries: make(map[string][]entry)}
}

// OpenScope begins a new nesting level.
func (t *Table) OpenScope() {
	t.level++
}

// CloseScope discards every entry made at the current level and returns to
// the enclosing one.
func (t *Table) CloseScope() {
	for name, stack := range t.entries {
		n := len(stack)
		for n > 0 && stack[n-1].level == t.level {
			n--
		}
		if n == 0 {
			delete(t.entries, name)
		} else {
			t.entries[name] = stack[:n]
		}
	}
	t.level--
}

// Enter inserts decl for name at the current level. A second Enter of the
// same name at the same level flags the new entry as a duplicate: it stays
// in the table (so CloseScope still discards it at the right time) but any
// Retrieve that would resolve to it instead reports not-found, which the
// Checker surfaces as an identification error (spec §4.3).
func (t *Table) Enter(name string, value any) {
	stack := t.entries[name]
	dup := len(stack) > 0 && stack[len(stack)-1].level == t.level
	t.entries[name] = append(stack, entry{value: value, level: t.level, duplicate: dup})
}

// Retrieve returns the innermost entry for name, or (nil, false) if none
// exists or that innermost entry is a flagged duplicate; entries below a
// duplicate are not consulted.
func (t *Table) Retrieve(name string) (any, bool) {
	stack := t.entries[name]
	if len(stack) == 0 {
		return nil, false
	}
	top := stack[len(stack)-1]
	if top.duplicate {
		return nil, false
	}
	return top.value, true
}

// Level reports the table's current nesting level, mostly useful in tests
// that assert scopes balance (spec §8.1).
func (t *Table) Level() int {
	return t.level
}
