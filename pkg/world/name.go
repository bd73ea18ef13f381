package world

import "fmt"

// Placeholder is the display text for unknown or redacted names.
const Placeholder = "???"

// NameKind enumerates the forms a person's name can take.
type NameKind int

const (
	// NameNull is an unknown name.
	NameNull NameKind = iota
	// NameTriple is a first/nick/last name.
	NameTriple
	// NameSingle is a single display token.
	NameSingle
)

// String returns the save-file class name for the kind.
func (k NameKind) String() string {
	switch k {
	case NameTriple:
		return "NameTriple"
	case NameSingle:
		return "NameSingle"
	default:
		return "Null"
	}
}

// Name is a person's name. Construct it with [NullName], [TripleName] or
// [SingleName]; the zero value is the null name.
type Name struct {
	kind  NameKind
	first string
	nick  string
	last  string
}

// NullName returns the unknown name.
func NullName() Name { return Name{} }

// TripleName returns a first/nick/last name.
func TripleName(first, nick, last string) Name {
	return Name{kind: NameTriple, first: first, nick: nick, last: last}
}

// SingleName returns a name made of one display token.
func SingleName(name string) Name {
	return Name{kind: NameSingle, nick: name}
}

// Kind reports which form the name has.
func (n Name) Kind() NameKind { return n.kind }

// IsNull reports whether the name is unknown.
func (n Name) IsNull() bool { return n.kind == NameNull }

// Nick returns the short form used in tooltips.
// Null names return [Placeholder].
func (n Name) Nick() string {
	if n.kind == NameNull {
		return Placeholder
	}
	return n.nick
}

// Full returns the display form of the name.
//
// A nickname equal to the first or last name collapses into it:
//
//	TripleName("Ann", "Ann", "Lee").Full()  // 'Ann' Lee
//	TripleName("Ann", "Lee", "Lee").Full()  // Ann 'Lee'
//	TripleName("Ann", "Bo", "Lee").Full()   // Ann 'Bo' Lee
//	SingleName("Bo").Full()                 // 'Bo'
func (n Name) Full() string {
	switch n.kind {
	case NameTriple:
		switch n.nick {
		case n.first:
			return fmt.Sprintf("'%s' %s", n.first, n.last)
		case n.last:
			return fmt.Sprintf("%s '%s'", n.first, n.last)
		default:
			return fmt.Sprintf("%s '%s' %s", n.first, n.nick, n.last)
		}
	case NameSingle:
		return fmt.Sprintf("'%s'", n.nick)
	default:
		return Placeholder
	}
}

// String implements fmt.Stringer.
func (n Name) String() string { return n.Full() }
