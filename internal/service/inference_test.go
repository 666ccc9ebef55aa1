package service

import (
	"testing"

	"yamsoo/internal/relation"
)

func TestMarriageInfersSiblingInLaw(t *testing.T) {
	env := newTestEnv(t)

	ahmed := env.createUser(t, "ahmed", "male")
	fatima := env.createUser(t, "fatima", "female")
	youssef := env.createUser(t, "youssef", "male")

	env.relate(t, fatima, youssef, relation.Sister)
	env.relate(t, ahmed, fatima, relation.Husband)

	if kind := env.kindBetween(t, ahmed, youssef); kind != relation.BrotherInLaw {
		t.Errorf("ahmed toward youssef = %s, want brother_in_law", kind)
	}
	if kind := env.kindBetween(t, youssef, ahmed); kind != relation.BrotherInLaw {
		t.Errorf("youssef toward ahmed = %s, want brother_in_law", kind)
	}
}

func TestSiblingAfterMarriageInfersSiblingInLaw(t *testing.T) {
	env := newTestEnv(t)

	ahmed := env.createUser(t, "ahmed", "male")
	fatima := env.createUser(t, "fatima", "female")
	youssef := env.createUser(t, "youssef", "male")

	// Same family as above, edges accepted in the opposite order
	env.relate(t, ahmed, fatima, relation.Husband)
	env.relate(t, fatima, youssef, relation.Sister)

	if kind := env.kindBetween(t, ahmed, youssef); kind != relation.BrotherInLaw {
		t.Errorf("ahmed toward youssef = %s, want brother_in_law", kind)
	}
	if kind := env.kindBetween(t, youssef, ahmed); kind != relation.BrotherInLaw {
		t.Errorf("youssef toward ahmed = %s, want brother_in_law", kind)
	}
}

func TestParentInfersGrandparent(t *testing.T) {
	env := newTestEnv(t)

	karim := env.createUser(t, "karim", "male")
	ahmed := env.createUser(t, "ahmed", "male")
	leila := env.createUser(t, "leila", "female")

	env.relate(t, ahmed, leila, relation.Father)
	env.relate(t, karim, ahmed, relation.Father)

	if kind := env.kindBetween(t, karim, leila); kind != relation.Grandfather {
		t.Errorf("karim toward leila = %s, want grandfather", kind)
	}
	if kind := env.kindBetween(t, leila, karim); kind != relation.Granddaughter {
		t.Errorf("leila toward karim = %s, want granddaughter", kind)
	}
}

func TestGrandparentInferredThroughExistingParent(t *testing.T) {
	env := newTestEnv(t)

	karim := env.createUser(t, "karim", "male")
	ahmed := env.createUser(t, "ahmed", "male")
	leila := env.createUser(t, "leila", "female")

	// Grandfather edge first, grandchild arrives second
	env.relate(t, karim, ahmed, relation.Father)
	env.relate(t, ahmed, leila, relation.Father)

	if kind := env.kindBetween(t, karim, leila); kind != relation.Grandfather {
		t.Errorf("karim toward leila = %s, want grandfather", kind)
	}
	if kind := env.kindBetween(t, leila, karim); kind != relation.Granddaughter {
		t.Errorf("leila toward karim = %s, want granddaughter", kind)
	}
}

func TestParentInfersSiblings(t *testing.T) {
	env := newTestEnv(t)

	parent := env.createUser(t, "karim", "male")
	c1 := env.createUser(t, "ahmed", "male")
	c2 := env.createUser(t, "leila", "female")
	c3 := env.createUser(t, "omar", "male")

	env.relate(t, parent, c1, relation.Father)
	env.relate(t, parent, c2, relation.Father)
	env.relate(t, parent, c3, relation.Father)

	// Each new child links to every existing one, gendered per side
	if kind := env.kindBetween(t, c1, c2); kind != relation.Brother {
		t.Errorf("c1 toward c2 = %s, want brother", kind)
	}
	if kind := env.kindBetween(t, c2, c1); kind != relation.Sister {
		t.Errorf("c2 toward c1 = %s, want sister", kind)
	}
	if kind := env.kindBetween(t, c3, c1); kind != relation.Brother {
		t.Errorf("c3 toward c1 = %s, want brother", kind)
	}
	if kind := env.kindBetween(t, c3, c2); kind != relation.Brother {
		t.Errorf("c3 toward c2 = %s, want brother", kind)
	}
	if kind := env.kindBetween(t, c2, c3); kind != relation.Sister {
		t.Errorf("c2 toward c3 = %s, want sister", kind)
	}
}

func TestParentInfersParentInLaw(t *testing.T) {
	env := newTestEnv(t)

	karim := env.createUser(t, "karim", "male")
	ahmed := env.createUser(t, "ahmed", "male")
	fatima := env.createUser(t, "fatima", "female")

	env.relate(t, ahmed, fatima, relation.Husband)
	env.relate(t, karim, ahmed, relation.Father)

	if kind := env.kindBetween(t, karim, fatima); kind != relation.FatherInLaw {
		t.Errorf("karim toward fatima = %s, want father_in_law", kind)
	}
	if kind := env.kindBetween(t, fatima, karim); kind != relation.DaughterInLaw {
		t.Errorf("fatima toward karim = %s, want daughter_in_law", kind)
	}
}

func TestMarriageInfersParentInLaw(t *testing.T) {
	env := newTestEnv(t)

	karim := env.createUser(t, "karim", "male")
	ahmed := env.createUser(t, "ahmed", "male")
	fatima := env.createUser(t, "fatima", "female")

	// Parent edge exists before the marriage
	env.relate(t, karim, ahmed, relation.Father)
	env.relate(t, ahmed, fatima, relation.Husband)

	if kind := env.kindBetween(t, karim, fatima); kind != relation.FatherInLaw {
		t.Errorf("karim toward fatima = %s, want father_in_law", kind)
	}
	if kind := env.kindBetween(t, fatima, karim); kind != relation.DaughterInLaw {
		t.Errorf("fatima toward karim = %s, want daughter_in_law", kind)
	}
}

func TestInferenceNeverOverwritesExistingEdges(t *testing.T) {
	env := newTestEnv(t)

	karim := env.createUser(t, "karim", "male")
	ahmed := env.createUser(t, "ahmed", "male")
	leila := env.createUser(t, "leila", "female")

	// The siblings connected themselves directly first
	env.relate(t, ahmed, leila, relation.Brother)
	env.relate(t, karim, ahmed, relation.Father)
	env.relate(t, karim, leila, relation.Father)

	// The direct sibling edges survive and no duplicates appear
	if kind := env.kindBetween(t, ahmed, leila); kind != relation.Brother {
		t.Errorf("ahmed toward leila = %s, want brother", kind)
	}

	var count int
	err := env.db.QueryRow(
		"SELECT COUNT(*) FROM family_relationships WHERE (user_id = ? AND related_user_id = ?) OR (user_id = ? AND related_user_id = ?)",
		ahmed, leila, leila, ahmed,
	).Scan(&count)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("rows between siblings = %d, want exactly forward and mirror", count)
	}
}

func TestInferredEdgesMarkedAutomatic(t *testing.T) {
	env := newTestEnv(t)

	karim := env.createUser(t, "karim", "male")
	ahmed := env.createUser(t, "ahmed", "male")
	leila := env.createUser(t, "leila", "female")

	env.relate(t, karim, ahmed, relation.Father)
	env.relate(t, karim, leila, relation.Father)

	rels, err := env.relSvc.ListRelationships(ahmed)
	if err != nil {
		t.Fatalf("ListRelationships failed: %v", err)
	}

	for _, rel := range rels {
		switch rel.RelatedUserID {
		case karim:
			if rel.CreatedAutomatically {
				t.Error("accepted parent edge should not be automatic")
			}
		case leila:
			if !rel.CreatedAutomatically {
				t.Error("inferred sibling edge should be automatic")
			}
		}
	}
}

func TestUnspecifiedGenderFallsBackToMasculine(t *testing.T) {
	env := newTestEnv(t)

	parent := env.createUser(t, "karim", "male")
	c1 := env.createUser(t, "alex", "")
	c2 := env.createUser(t, "leila", "female")

	env.relate(t, parent, c1, relation.Father)
	env.relate(t, parent, c2, relation.Father)

	if kind := env.kindBetween(t, c1, c2); kind != relation.Brother {
		t.Errorf("ungendered sibling kind = %s, want brother", kind)
	}
	if kind := env.kindBetween(t, c2, c1); kind != relation.Sister {
		t.Errorf("c2 toward c1 = %s, want sister", kind)
	}
}

func TestSpouseOfSiblingSpouseBecomesSiblingInLaw(t *testing.T) {
	env := newTestEnv(t)

	fatima := env.createUser(t, "fatima", "female")
	leila := env.createUser(t, "leila", "female")
	ahmed := env.createUser(t, "ahmed", "male")
	omar := env.createUser(t, "omar", "male")

	env.relate(t, fatima, leila, relation.Sister)
	env.relate(t, omar, leila, relation.Husband)
	env.relate(t, ahmed, fatima, relation.Husband)

	// The two husbands of two sisters are siblings-in-law
	if kind := env.kindBetween(t, ahmed, omar); kind != relation.BrotherInLaw {
		t.Errorf("ahmed toward omar = %s, want brother_in_law", kind)
	}
	if kind := env.kindBetween(t, omar, ahmed); kind != relation.BrotherInLaw {
		t.Errorf("omar toward ahmed = %s, want brother_in_law", kind)
	}
}
