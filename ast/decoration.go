package ast

// ResolutionState is the per-node state machine from spec §4.5.7: every
// Identifier/Operator node starts Unresolved and transitions exactly once,
// either to Resolved (a declaration was found) or Unresolvable (lookup
// failed and an IdentificationError was already reported for it).
type ResolutionState int

const (
	Unresolved ResolutionState = iota
	Resolved
	Unresolvable
)

// DeclSlot is the decoration slot carried by every Identifier and Operator
// node: a link back to whatever introduced the name, filled in exactly once
// by the Checker. The link is `any`, not Declaration, because an applied
// occurrence can resolve to a FormalParameter (a distinct sealed interface)
// as well as to a Declaration — e.g. a reference to a `var` formal.
type DeclSlot struct {
	value Any
	state ResolutionState
}

// Any is an alias for the empty interface, named for readability at
// DeclSlot call sites (ast.Any reads better than bare `any` next to
// Declaration/FormalParameter types).
type Any = any

// Resolve links the slot to value. Panics if called more than once — a
// violation of the "decoration slot assigned exactly once" invariant
// indicates a Checker bug, not a malformed program.
func (s *DeclSlot) Resolve(value Any) {
	if s.state != Unresolved {
		panic("ast: declaration slot resolved more than once")
	}
	s.value = value
	s.state = Resolved
}

// MarkUnresolvable records that lookup failed; the caller is responsible for
// having already reported the IdentificationError.
func (s *DeclSlot) MarkUnresolvable() {
	if s.state != Unresolved {
		panic("ast: declaration slot resolved more than once")
	}
	s.state = Unresolvable
}

// Declaration returns whatever the slot resolved to (a Declaration or a
// FormalParameter), or nil if the slot is not in the Resolved state.
func (s *DeclSlot) Declaration() Any {
	return s.value
}

// State returns the slot's current ResolutionState.
func (s *DeclSlot) State() ResolutionState {
	return s.state
}

// TypeSlot is the decoration slot carried by every Expression and Vname
// node: its inferred TypeDenoter, filled in exactly once by the Checker.
type TypeSlot struct {
	typ TypeDenoter
	set bool
}

// Set assigns the slot's type. Panics on a second call, mirroring DeclSlot.
func (s *TypeSlot) Set(t TypeDenoter) {
	if s.set {
		panic("ast: type slot set more than once")
	}
	s.typ = t
	s.set = true
}

func (s *TypeSlot) Type() TypeDenoter {
	return s.typ
}

func (s *TypeSlot) IsSet() bool {
	return s.set
}
