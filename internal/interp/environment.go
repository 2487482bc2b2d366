package interp

import (
	"sort"

	"github.com/minipl-lang/minipl/internal/span"
	"github.com/minipl-lang/minipl/internal/suggest"
)

// Environment is a single flat name→Object scope: Mini-PL has no nested
// lexical scopes or functions, so one map for the whole program run is
// enough.
type Environment struct {
	values map[string]Object
}

// NewEnvironment returns an empty Environment ready for use.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Object)}
}

// Define inserts a new binding. It fails with VariableReDeclaration if name
// is already bound - Mini-PL variables may be declared at most once.
func (e *Environment) Define(name string, value Object, sp span.Span) error {
	if _, exists := e.values[name]; exists {
		return errVariableReDeclaration(sp, name)
	}
	e.values[name] = value
	return nil
}

// Get looks up an existing binding. It fails with VariableGetFailed,
// carrying a fuzzy "did you mean" suggestion drawn from the other declared
// names, if name was never defined.
func (e *Environment) Get(name string, sp span.Span) (Object, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return Object{}, errVariableGetFailed(sp, name, suggest.Help(name, e.names()))
}

// Assign updates an existing binding in place. It fails with
// VariableAssignToUndeclared if name was never defined, or
// VariableAssignTypeMismatch if value's dynamic type differs from the
// value currently stored - Mini-PL bindings are type-preserving once
// declared. Returns the newly stored value on success.
func (e *Environment) Assign(name string, value Object, sp span.Span) (Object, error) {
	old, ok := e.values[name]
	if !ok {
		return Object{}, errVariableAssignToUndeclared(sp, name)
	}
	if !old.SameType(value) {
		return Object{}, errVariableAssignTypeMismatch(sp, name, old.typeName(), value.typeName())
	}
	e.values[name] = value
	return value, nil
}

func (e *Environment) names() []string {
	names := make([]string, 0, len(e.values))
	for n := range e.values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
