package relation

// inverseTable maps a relation kind to the kind the *target* of the
// relationship holds back toward its source, per the target's gender.
// Keyed on (Kind, Gender) rather than strings so the mapping stays
// exhaustive over the enum; TestInverseCoversCatalog enforces that.
var inverseTable = map[Kind]map[Gender]Kind{
	Father:        {Male: Son, Female: Daughter},
	Mother:        {Male: Son, Female: Daughter},
	Son:           {Male: Father, Female: Mother},
	Daughter:      {Male: Father, Female: Mother},
	Brother:       {Male: Brother, Female: Sister},
	Sister:        {Male: Brother, Female: Sister},
	Husband:       {Male: Husband, Female: Wife},
	Wife:          {Male: Husband, Female: Wife},
	Grandfather:   {Male: Grandson, Female: Granddaughter},
	Grandmother:   {Male: Grandson, Female: Granddaughter},
	Grandson:      {Male: Grandfather, Female: Grandmother},
	Granddaughter: {Male: Grandfather, Female: Grandmother},
	Uncle:         {Male: Nephew, Female: Niece},
	Aunt:          {Male: Nephew, Female: Niece},
	Nephew:        {Male: Uncle, Female: Aunt},
	Niece:         {Male: Uncle, Female: Aunt},
	Cousin:        {Male: Cousin, Female: Cousin},
	FatherInLaw:   {Male: SonInLaw, Female: DaughterInLaw},
	MotherInLaw:   {Male: SonInLaw, Female: DaughterInLaw},
	SonInLaw:      {Male: FatherInLaw, Female: MotherInLaw},
	DaughterInLaw: {Male: FatherInLaw, Female: MotherInLaw},
	BrotherInLaw:  {Male: BrotherInLaw, Female: SisterInLaw},
	SisterInLaw:   {Male: BrotherInLaw, Female: SisterInLaw},
	Stepfather:    {Male: Stepson, Female: Stepdaughter},
	Stepmother:    {Male: Stepson, Female: Stepdaughter},
	Stepson:       {Male: Stepfather, Female: Stepmother},
	Stepdaughter:  {Male: Stepfather, Female: Stepmother},
}

// Inverse returns the relation kind the target of a relationship holds
// back toward its source. kind names what the source is to the target;
// targetGender is the gender of the person who will hold the result.
// An unspecified gender falls back to the masculine form so the
// resolver always returns a usable kind. Kinds outside the catalog are
// a configuration error caught at seed time, never here.
func Inverse(kind Kind, targetGender Gender) Kind {
	byGender, ok := inverseTable[kind]
	if !ok {
		return kind
	}
	if targetGender == Female {
		return byGender[Female]
	}
	return byGender[Male]
}
