package shadematcher

import "testing"

type FolderTest struct {
	Shade   string
	Folders []string
	Out     string
	Found   bool
}

var FolderTests = []FolderTest{
	{
		Shade:   "9 LISBOA",
		Folders: []string{"9 LISBOA", "10 PARIS"},
		Out:     "9 LISBOA",
		Found:   true,
	},
	{
		Shade:   "LISBOA",
		Folders: []string{"9 LISBOA", "10 PARIS"},
		Out:     "9 LISBOA",
		Found:   true,
	},
	{
		Shade:   "9. LISBOA",
		Folders: []string{"9 LISBOA", "10 PARIS"},
		Out:     "9 LISBOA",
		Found:   true,
	},
	{
		// Word-order insensitive tier
		Shade:   "22 GENEVE",
		Folders: []string{"10 PARIS", "GENÈVE 22"},
		Out:     "GENÈVE 22",
		Found:   true,
	},
	{
		// An exact hit beats an earlier substring hit
		Shade:   "RED",
		Folders: []string{"RED CARPET", "RED"},
		Out:     "RED",
		Found:   true,
	},
	{
		Shade:   "99 NOWHERE",
		Folders: []string{"9 LISBOA"},
		Out:     "",
		Found:   false,
	},
	{
		Shade:   "",
		Folders: []string{"9 LISBOA"},
		Out:     "",
		Found:   false,
	},
}

func TestMatchFolder(t *testing.T) {
	for _, probe := range FolderTests {
		test := probe
		t.Run(test.Shade, func(t *testing.T) {
			t.Parallel()
			out, found := MatchFolder(test.Shade, test.Folders)
			if found != test.Found {
				t.Errorf("FAIL %s: Expected found '%v' got '%v'", test.Shade, test.Found, found)
				return
			}
			if out != test.Out {
				t.Errorf("FAIL %s: Expected '%s' got '%s'", test.Shade, test.Out, out)
				return
			}
			t.Log("PASS:", test.Shade)
		})
	}
}

func TestResolveShadeImages(t *testing.T) {
	index := FolderIndex{
		"9 LISBOA": []string{
			"/images/shades/9-lisboa/2_side.jpg",
			"/images/shades/9-lisboa/1_front.jpg",
			"/images/shades/9-lisboa/3_hand.jpg",
		},
		"GENÈVE 22": []string{
			"/images/shades/geneve/1_front.jpg",
		},
		"EMPTY FOLDER": nil,
	}
	shades := []Shade{
		{Name: "9. LISBOA"},
		{Name: "99 NOWHERE"},
		{Name: "22 GENEVE"},
		{Name: "EMPTY FOLDER"},
	}

	out := ResolveShadeImages(shades, index, 2)

	if len(out) != 2 {
		t.Fatalf("FAIL: Expected 2 shades got %d", len(out))
	}
	if out[0].Name != "9. LISBOA" || out[1].Name != "22 GENEVE" {
		t.Fatalf("FAIL: wrong shades kept: %v", out)
	}
	if out[0].Image != "/images/shades/9-lisboa/1_front.jpg" {
		t.Errorf("FAIL: Expected first image sorted by filename, got '%s'", out[0].Image)
	}
	if len(out[0].Images) != 2 {
		t.Errorf("FAIL: Expected 2 images after capping, got %d", len(out[0].Images))
	}
	if out[1].Image != "/images/shades/geneve/1_front.jpg" {
		t.Errorf("FAIL: Expected '/images/shades/geneve/1_front.jpg' got '%s'", out[1].Image)
	}
	t.Log("PASS: ResolveShadeImages")
}

type CategoryTest struct {
	Name     string
	Product  CategoryProbe
	Target   string
	Keywords KeywordTable
	Result   bool
}

var CategoryTests = []CategoryTest{
	{
		Name: "explicit tag wins",
		Product: CategoryProbe{
			Title:      "Anything",
			Categories: []string{"Skincare"},
		},
		Target: "Skincare",
		Result: true,
	},
	{
		Name: "explicit tag case insensitive",
		Product: CategoryProbe{
			Categories: []string{"skincare"},
		},
		Target: "Skincare",
		Result: true,
	},
	{
		Name: "explicit tags suppress keyword fallback",
		Product: CategoryProbe{
			Title:      "Hand Cream",
			Categories: []string{"Skincare"},
		},
		Target: "Hand care",
		Keywords: KeywordTable{
			"Hand care": {"hand", "cream"},
		},
		Result: false,
	},
	{
		Name: "keyword fallback on title",
		Product: CategoryProbe{
			Title: "Hand Cream",
			Slug:  "hand-cream",
		},
		Target: "Hand care",
		Keywords: KeywordTable{
			"Hand care": {"hand", "cream"},
		},
		Result: true,
	},
	{
		Name: "keyword fallback miss",
		Product: CategoryProbe{
			Title: "Nail Polish",
			Slug:  "nail-polish",
		},
		Target: "Hand care",
		Keywords: KeywordTable{
			"Hand care": {"hand", "cream"},
		},
		Result: false,
	},
	{
		Name: "keyword fallback on description",
		Product: CategoryProbe{
			Title:       "Mava+",
			Slug:        "mava-plus",
			Description: "Penetrating cuticle remover",
		},
		Target: "Cuticle Care",
		Keywords: KeywordTable{
			"Cuticle Care": {"cuticle", "nail"},
		},
		Result: true,
	},
	{
		Name: "unknown target matched on its own name",
		Product: CategoryProbe{
			Title: "Travel Pouch",
			Slug:  "travel-pouch",
		},
		Target: "Pouch",
		Result: true,
	},
}

func TestMatchCategory(t *testing.T) {
	for _, probe := range CategoryTests {
		test := probe
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			out := MatchCategory(test.Product, test.Target, test.Keywords)
			if out != test.Result {
				t.Errorf("FAIL %s: Expected '%v' got '%v'", test.Name, test.Result, out)
				return
			}
			t.Log("PASS:", test.Name)
		})
	}
}
