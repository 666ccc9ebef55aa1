package relation

// Kind identifies a family relation a person holds toward another.
// The value a row stores reads as "user is <Kind> of related user".
type Kind string

const (
	Father        Kind = "father"
	Mother        Kind = "mother"
	Son           Kind = "son"
	Daughter      Kind = "daughter"
	Brother       Kind = "brother"
	Sister        Kind = "sister"
	Husband       Kind = "husband"
	Wife          Kind = "wife"
	Grandfather   Kind = "grandfather"
	Grandmother   Kind = "grandmother"
	Grandson      Kind = "grandson"
	Granddaughter Kind = "granddaughter"
	Uncle         Kind = "uncle"
	Aunt          Kind = "aunt"
	Nephew        Kind = "nephew"
	Niece         Kind = "niece"
	Cousin        Kind = "cousin"
	FatherInLaw   Kind = "father_in_law"
	MotherInLaw   Kind = "mother_in_law"
	SonInLaw      Kind = "son_in_law"
	DaughterInLaw Kind = "daughter_in_law"
	BrotherInLaw  Kind = "brother_in_law"
	SisterInLaw   Kind = "sister_in_law"
	Stepfather    Kind = "stepfather"
	Stepmother    Kind = "stepmother"
	Stepson       Kind = "stepson"
	Stepdaughter  Kind = "stepdaughter"
)

// Gender disambiguates the gendered variant of a relation kind.
type Gender string

const (
	Male        Gender = "male"
	Female      Gender = "female"
	Unspecified Gender = "unspecified"
)

// ParseGender maps a stored gender string onto the enum. Anything
// unrecognized (including an empty string from a missing profile)
// becomes Unspecified.
func ParseGender(s string) Gender {
	switch s {
	case string(Male):
		return Male
	case string(Female):
		return Female
	default:
		return Unspecified
	}
}

// Category groups relation kinds for tree display.
type Category string

const (
	CategoryDirect   Category = "direct"
	CategorySibling  Category = "sibling"
	CategoryInLaw    Category = "in_law"
	CategoryMarriage Category = "marriage"
	CategoryExtended Category = "extended"
)

// IsParent reports whether the holder of the kind is a blood parent.
func (k Kind) IsParent() bool {
	return k == Father || k == Mother
}

// IsChild reports whether the holder of the kind is a blood child.
func (k Kind) IsChild() bool {
	return k == Son || k == Daughter
}

// IsSpouse reports whether the kind is a marriage link.
func (k Kind) IsSpouse() bool {
	return k == Husband || k == Wife
}

// IsSibling reports whether the kind is a blood sibling link.
func (k Kind) IsSibling() bool {
	return k == Brother || k == Sister
}

// ParentFor returns the parent kind for the parent's gender.
func ParentFor(g Gender) Kind {
	if g == Female {
		return Mother
	}
	return Father
}

// ChildFor returns the child kind for the child's gender.
func ChildFor(g Gender) Kind {
	if g == Female {
		return Daughter
	}
	return Son
}

// SiblingFor returns the sibling kind for the sibling's gender.
func SiblingFor(g Gender) Kind {
	if g == Female {
		return Sister
	}
	return Brother
}

// SpouseFor returns the spouse kind for the spouse's gender.
func SpouseFor(g Gender) Kind {
	if g == Female {
		return Wife
	}
	return Husband
}

// GrandparentFor returns the grandparent kind for the grandparent's gender.
func GrandparentFor(g Gender) Kind {
	if g == Female {
		return Grandmother
	}
	return Grandfather
}

// GrandchildFor returns the grandchild kind for the grandchild's gender.
func GrandchildFor(g Gender) Kind {
	if g == Female {
		return Granddaughter
	}
	return Grandson
}

// SiblingInLawFor returns the sibling-in-law kind for the holder's gender.
func SiblingInLawFor(g Gender) Kind {
	if g == Female {
		return SisterInLaw
	}
	return BrotherInLaw
}

// ParentInLawFor returns the parent-in-law kind for the holder's gender.
func ParentInLawFor(g Gender) Kind {
	if g == Female {
		return MotherInLaw
	}
	return FatherInLaw
}

// ChildInLawFor returns the child-in-law kind for the holder's gender.
func ChildInLawFor(g Gender) Kind {
	if g == Female {
		return DaughterInLaw
	}
	return SonInLaw
}
