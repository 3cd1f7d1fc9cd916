package catlog

// ScopedCategory makes a category the implicit one for a lexical scope. The
// guard is meant to live exactly as long as the scope:
//
//	defer catlog.PushCategory(cat).Release()
//
// so the pop runs on every exit path, panics included. A guard releases
// exactly the entry it pushed; releasing out of order or twice panics.
type ScopedCategory struct {
	cat      *Category
	released bool
}

// PushCategory pushes cat onto the process-wide scope stack and returns the
// guard that pops it.
func PushCategory(cat *Category) *ScopedCategory {
	if cat == nil {
		panic("catlog: cannot push nil category")
	}
	Get().pushCategory(cat)
	return &ScopedCategory{cat: cat}
}

// PushCategoryName is PushCategory with declare-on-first-use semantics.
func PushCategoryName(name string) *ScopedCategory {
	return PushCategory(GetCategory(name))
}

// Release pops the entry this guard pushed. Unconditional: call it from a
// defer so the stack is balanced even when the scope exits by panic.
func (sc *ScopedCategory) Release() {
	if sc.released {
		panic("catlog: scoped category released twice")
	}
	Get().popCategory(sc.cat)
	sc.released = true
}

// Category returns the category this guard holds on the stack.
func (sc *ScopedCategory) Category() *Category {
	return sc.cat
}
