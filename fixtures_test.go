package gilded_test

import (
	"github.com/gilded-go/gilded"
)

// Test models mirror a small relational shape: a college holds many
// alchemists, each holding many formulae.

type WizardCollege struct {
	ID         int64  `gilded:"id"`
	Name       string `gilded:"name"`
	Alchemists []*Alchemist
}

type Alchemist struct {
	ID       int64  `gilded:"id"`
	Name     string `gilded:"name"`
	SchoolID int64  `gilded:"school_id,nullable"`
	Formulae []*Formula
}

type Formula struct {
	ID       int64  `gilded:"id"`
	Title    string `gilded:"title"`
	AuthorID int64  `gilded:"author_id,nullable"`
}

type CamelFormula struct {
	ID             int64  `gilded:"id"`
	Title          string `gilded:"title"`
	CamelAttribute string `gilded:"camelAttribute"`
}

func mustDescribe[T any]() *gilded.Descriptor {
	d, err := gilded.Describe[T]()
	if err != nil {
		panic(err)
	}
	return d
}

var (
	wizardDesc       = mustDescribe[WizardCollege]()
	alchemistDesc    = mustDescribe[Alchemist]()
	formulaDesc      = mustDescribe[Formula]()
	camelFormulaDesc = mustDescribe[CamelFormula]()
)

// collegeNested is the relation map used by the golden-structure tests.
func collegeNested() map[string]gilded.Nested {
	return map[string]gilded.Nested{
		"alchemists": {
			Model: alchemistDesc,
			Many:  true,
			Nested: map[string]gilded.Nested{
				"formulae": {Model: formulaDesc, Many: true},
			},
		},
	}
}

func alchemistNested() map[string]gilded.Nested {
	return map[string]gilded.Nested{
		"formulae": {Model: formulaDesc, Many: true},
	}
}

// testCollege builds the canonical fixture instance.
func testCollege() *WizardCollege {
	return &WizardCollege{
		ID:   1,
		Name: "Bogwarts",
		Alchemists: []*Alchemist{
			{
				ID:       1,
				Name:     "Albertus Magnus",
				SchoolID: 1,
				Formulae: []*Formula{
					{ID: 1, Title: "transmutation", AuthorID: 1},
				},
			},
		},
	}
}
