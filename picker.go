package catlog

// CategoryPicker decides which category applies to a log call. The core
// hands it the current top of the scope stack (nil when empty); the picker
// returns the category to use. Precedence is fixed: an explicit category
// beats the scope top, the scope top beats the flavor default. Pickers are
// plain value lookups and must not allocate.
type CategoryPicker interface {
	Pick(scopeTop *Category) *Category
}

// SpecificCategory always picks C, ignoring the scope stack. This is the
// "explicit category at the call site" policy.
type SpecificCategory struct {
	C *Category
}

func (p SpecificCategory) Pick(*Category) *Category {
	return p.C
}

// DeriveCategory picks the scope top when one is present, then Default, then
// LogGeneral. This is the policy flavors use unless an explicit category was
// requested.
type DeriveCategory struct {
	Default *Category
}

func (p DeriveCategory) Pick(scopeTop *Category) *Category {
	if scopeTop != nil {
		return scopeTop
	}
	if p.Default != nil {
		return p.Default
	}
	return Get().Settings().DefaultCategory()
}
