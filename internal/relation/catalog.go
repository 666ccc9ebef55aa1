package relation

import "fmt"

// Type is one catalog entry: a relation kind with its gendered display
// names per locale and tree category. Immutable reference data.
type Type struct {
	Kind     Kind
	Category Category
	Names    map[string]string // locale -> display name
}

// Catalog is the closed set of relation kinds the application knows.
// It is built once at startup and passed by reference to the services
// that need it; nothing mutates it afterwards.
type Catalog struct {
	types map[Kind]Type
	order []Kind
}

// NewCatalog builds a catalog from entries, rejecting duplicates and
// entries whose kind has no inverse mapping. A failure here is fatal
// at startup, which keeps unknown kinds out of the request path.
func NewCatalog(entries []Type) (*Catalog, error) {
	c := &Catalog{types: make(map[Kind]Type, len(entries))}
	for _, e := range entries {
		if _, dup := c.types[e.Kind]; dup {
			return nil, fmt.Errorf("duplicate relation kind %q", e.Kind)
		}
		if _, ok := inverseTable[e.Kind]; !ok {
			return nil, fmt.Errorf("relation kind %q has no inverse mapping", e.Kind)
		}
		c.types[e.Kind] = e
		c.order = append(c.order, e.Kind)
	}
	return c, nil
}

// Lookup returns the catalog entry for kind.
func (c *Catalog) Lookup(kind Kind) (Type, bool) {
	t, ok := c.types[kind]
	return t, ok
}

// Contains reports whether kind is part of the catalog.
func (c *Catalog) Contains(kind Kind) bool {
	_, ok := c.types[kind]
	return ok
}

// Kinds returns the catalog kinds in seed order.
func (c *Catalog) Kinds() []Kind {
	out := make([]Kind, len(c.order))
	copy(out, c.order)
	return out
}

// DisplayName returns the localized display name for kind, falling
// back to English and then to the raw kind code.
func (c *Catalog) DisplayName(kind Kind, locale string) string {
	t, ok := c.types[kind]
	if !ok {
		return string(kind)
	}
	if name, ok := t.Names[locale]; ok {
		return name
	}
	if name, ok := t.Names["en"]; ok {
		return name
	}
	return string(kind)
}

// DefaultCatalog returns the built-in relation type catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTypes)
	if err != nil {
		// defaultTypes is static; a failure is a programming error.
		panic(err)
	}
	return c
}

var defaultTypes = []Type{
	{Kind: Father, Category: CategoryDirect, Names: map[string]string{"en": "Father", "fr": "Père", "ar": "أب"}},
	{Kind: Mother, Category: CategoryDirect, Names: map[string]string{"en": "Mother", "fr": "Mère", "ar": "أم"}},
	{Kind: Son, Category: CategoryDirect, Names: map[string]string{"en": "Son", "fr": "Fils", "ar": "ابن"}},
	{Kind: Daughter, Category: CategoryDirect, Names: map[string]string{"en": "Daughter", "fr": "Fille", "ar": "ابنة"}},
	{Kind: Brother, Category: CategorySibling, Names: map[string]string{"en": "Brother", "fr": "Frère", "ar": "أخ"}},
	{Kind: Sister, Category: CategorySibling, Names: map[string]string{"en": "Sister", "fr": "Sœur", "ar": "أخت"}},
	{Kind: Husband, Category: CategoryMarriage, Names: map[string]string{"en": "Husband", "fr": "Mari", "ar": "زوج"}},
	{Kind: Wife, Category: CategoryMarriage, Names: map[string]string{"en": "Wife", "fr": "Épouse", "ar": "زوجة"}},
	{Kind: Grandfather, Category: CategoryExtended, Names: map[string]string{"en": "Grandfather", "fr": "Grand-père", "ar": "جد"}},
	{Kind: Grandmother, Category: CategoryExtended, Names: map[string]string{"en": "Grandmother", "fr": "Grand-mère", "ar": "جدة"}},
	{Kind: Grandson, Category: CategoryExtended, Names: map[string]string{"en": "Grandson", "fr": "Petit-fils", "ar": "حفيد"}},
	{Kind: Granddaughter, Category: CategoryExtended, Names: map[string]string{"en": "Granddaughter", "fr": "Petite-fille", "ar": "حفيدة"}},
	{Kind: Uncle, Category: CategoryExtended, Names: map[string]string{"en": "Uncle", "fr": "Oncle", "ar": "عم"}},
	{Kind: Aunt, Category: CategoryExtended, Names: map[string]string{"en": "Aunt", "fr": "Tante", "ar": "عمة"}},
	{Kind: Nephew, Category: CategoryExtended, Names: map[string]string{"en": "Nephew", "fr": "Neveu", "ar": "ابن الأخ"}},
	{Kind: Niece, Category: CategoryExtended, Names: map[string]string{"en": "Niece", "fr": "Nièce", "ar": "ابنة الأخ"}},
	{Kind: Cousin, Category: CategoryExtended, Names: map[string]string{"en": "Cousin", "fr": "Cousin", "ar": "ابن العم"}},
	{Kind: FatherInLaw, Category: CategoryInLaw, Names: map[string]string{"en": "Father-in-law", "fr": "Beau-père", "ar": "حمو"}},
	{Kind: MotherInLaw, Category: CategoryInLaw, Names: map[string]string{"en": "Mother-in-law", "fr": "Belle-mère", "ar": "حماة"}},
	{Kind: SonInLaw, Category: CategoryInLaw, Names: map[string]string{"en": "Son-in-law", "fr": "Gendre", "ar": "صهر"}},
	{Kind: DaughterInLaw, Category: CategoryInLaw, Names: map[string]string{"en": "Daughter-in-law", "fr": "Belle-fille", "ar": "كنة"}},
	{Kind: BrotherInLaw, Category: CategoryInLaw, Names: map[string]string{"en": "Brother-in-law", "fr": "Beau-frère", "ar": "صهر"}},
	{Kind: SisterInLaw, Category: CategoryInLaw, Names: map[string]string{"en": "Sister-in-law", "fr": "Belle-sœur", "ar": "سلفة"}},
	{Kind: Stepfather, Category: CategoryDirect, Names: map[string]string{"en": "Stepfather", "fr": "Beau-père", "ar": "زوج الأم"}},
	{Kind: Stepmother, Category: CategoryDirect, Names: map[string]string{"en": "Stepmother", "fr": "Belle-mère", "ar": "زوجة الأب"}},
	{Kind: Stepson, Category: CategoryDirect, Names: map[string]string{"en": "Stepson", "fr": "Beau-fils", "ar": "ربيب"}},
	{Kind: Stepdaughter, Category: CategoryDirect, Names: map[string]string{"en": "Stepdaughter", "fr": "Belle-fille", "ar": "ربيبة"}},
}
