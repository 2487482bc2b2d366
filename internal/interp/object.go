package interp

import (
	"fmt"

	"github.com/minipl-lang/minipl/internal/span"
)

// ObjectKind identifies which variant of Object is populated.
type ObjectKind int

const (
	KindNothing ObjectKind = iota
	KindNumber
	KindText
	KindBoolean
)

func (k ObjectKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	case KindBoolean:
		return "Boolean"
	default:
		return "Nothing"
	}
}

// Object is the runtime value union every expression evaluates to: a
// Number, a Text, a Boolean, or Nothing (the placeholder that a
// not-yet-initialized binding never actually holds, since var declarations
// always assign a default).
type Object struct {
	Kind ObjectKind
	Num  int64
	Text string
	Bool bool
}

func Number(n int64) Object { return Object{Kind: KindNumber, Num: n} }
func Text(s string) Object  { return Object{Kind: KindText, Text: s} }
func Boolean(b bool) Object { return Object{Kind: KindBoolean, Bool: b} }
func Nothing() Object       { return Object{Kind: KindNothing} }

func (o *Object) typeName() string { return o.Kind.String() }

// SameType reports whether o and other are of the same dynamic variant,
// the rule the Environment enforces on assignment.
func (o Object) SameType(other Object) bool { return o.Kind == other.Kind }

// String renders an Object the way Print displays it: no quoting, no type
// tag, matching what a user typed for a literal.
func (o Object) String() string {
	switch o.Kind {
	case KindNumber:
		return fmt.Sprintf("%d", o.Num)
	case KindText:
		return o.Text
	case KindBoolean:
		return fmt.Sprintf("%t", o.Bool)
	default:
		return "Nothing"
	}
}

// AsNumeric is the strict accessor backing `as_numeric`: it succeeds only
// for KindNumber.
func (o Object) AsNumeric(sp span.Span) (int64, error) {
	if o.Kind != KindNumber {
		return 0, errAsNumericFailed(sp, &o)
	}
	return o.Num, nil
}

// AsBool is the strict accessor backing `as_bool`.
func (o Object) AsBool(sp span.Span) (bool, error) {
	if o.Kind != KindBoolean {
		return false, errAsBooleanFailed(sp, &o)
	}
	return o.Bool, nil
}

// AsText is the strict accessor backing `as_text`.
func (o Object) AsText(sp span.Span) (string, error) {
	if o.Kind != KindText {
		return "", errAsTextFailed(sp, &o)
	}
	return o.Text, nil
}
