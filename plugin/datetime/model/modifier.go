package model

// ModifierKind is the semantic qualifier stripped from a span boundary.
type ModifierKind int

const (
	ModifierNone ModifierKind = iota
	ModifierBefore
	ModifierAfter
	ModifierSince
	ModifierUntil
	ModifierAround
	ModifierEqual
)

// Modifier is a matched qualifier. Inclusive captures "on or before"
// against a plain "before".
type Modifier struct {
	Kind      ModifierKind
	Inclusive bool
}

// Mod renders the modifier as a Resolution.Mod string. An inclusive
// before reads as until and an inclusive after as since.
func (m Modifier) Mod() string {
	switch m.Kind {
	case ModifierBefore:
		if m.Inclusive {
			return ModUntil
		}
		return ModBefore
	case ModifierAfter:
		if m.Inclusive {
			return ModSince
		}
		return ModAfter
	case ModifierSince:
		return ModSince
	case ModifierUntil:
		return ModUntil
	case ModifierAround:
		return ModApprox
	}
	return ""
}

// ChangesRange reports whether the modifier turns a point into a range.
func (m Modifier) ChangesRange() bool {
	switch m.Kind {
	case ModifierBefore, ModifierAfter, ModifierSince, ModifierUntil:
		return true
	}
	return false
}

// CombineMod prefixes an existing mod with a newly applied one,
// e.g. CombineMod("end", "before") is "before-end".
func CombineMod(original, added string) string {
	switch {
	case original == "":
		return added
	case added == "":
		return original
	}
	return added + "-" + original
}
