package relation

import "testing"

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	if got := len(catalog.Kinds()); got != 27 {
		t.Errorf("catalog has %d kinds, want 27", got)
	}

	tests := []struct {
		kind     Kind
		category Category
	}{
		{Father, CategoryDirect},
		{Brother, CategorySibling},
		{Wife, CategoryMarriage},
		{BrotherInLaw, CategoryInLaw},
		{Grandfather, CategoryExtended},
		{Stepmother, CategoryDirect},
	}
	for _, tt := range tests {
		entry, ok := catalog.Lookup(tt.kind)
		if !ok {
			t.Errorf("catalog missing kind %s", tt.kind)
			continue
		}
		if entry.Category != tt.category {
			t.Errorf("kind %s has category %s, want %s", tt.kind, entry.Category, tt.category)
		}
	}
}

func TestCatalogDisplayName(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name   string
		kind   Kind
		locale string
		want   string
	}{
		{name: "english", kind: Father, locale: "en", want: "Father"},
		{name: "french", kind: Mother, locale: "fr", want: "Mère"},
		{name: "arabic", kind: Brother, locale: "ar", want: "أخ"},
		{name: "unknown locale falls back to english", kind: Sister, locale: "de", want: "Sister"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.DisplayName(tt.kind, tt.locale); got != tt.want {
				t.Errorf("DisplayName(%s, %s) = %q, want %q", tt.kind, tt.locale, got, tt.want)
			}
		})
	}
}

func TestNewCatalogRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Type
	}{
		{
			name: "duplicate kind",
			entries: []Type{
				{Kind: Father, Category: CategoryDirect},
				{Kind: Father, Category: CategoryDirect},
			},
		},
		{
			name: "kind without inverse mapping",
			entries: []Type{
				{Kind: Kind("godparent"), Category: CategoryExtended},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.entries); err == nil {
				t.Error("NewCatalog() accepted invalid entries, want error")
			}
		})
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"male", Male},
		{"female", Female},
		{"", Unspecified},
		{"other", Unspecified},
	}
	for _, tt := range tests {
		if got := ParseGender(tt.in); got != tt.want {
			t.Errorf("ParseGender(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
