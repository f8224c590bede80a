package enums

import "testing"

func TestRetailersOrder(t *testing.T) {
	got := Retailers()
	want := []Retailer{RetailerJBHiFi, RetailerGoodGuys, RetailerHarveyNorman}
	if len(got) != len(want) {
		t.Fatalf("expected %d retailers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s got %s", i, want[i], got[i])
		}
	}
}

func TestRetailerDisplayNames(t *testing.T) {
	cases := map[Retailer]string{
		RetailerJBHiFi:       "JB Hi-Fi",
		RetailerGoodGuys:     "The Good Guys",
		RetailerHarveyNorman: "Harvey Norman",
	}
	for retailer, name := range cases {
		if got := retailer.DisplayName(); got != name {
			t.Fatalf("retailer %s: expected %q got %q", retailer, name, got)
		}
	}
}

func TestParseRetailerRejectsUnknown(t *testing.T) {
	if _, err := ParseRetailer("amazon"); err == nil {
		t.Fatal("expected error for unknown retailer")
	}
	got, err := ParseRetailer("goodguys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != RetailerGoodGuys {
		t.Fatalf("unexpected retailer %s", got)
	}
}

func TestParseSortKeyDefaultsToLowest(t *testing.T) {
	key, err := ParseSortKey("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != SortKeyLowest {
		t.Fatalf("expected lowest, got %s", key)
	}
	if _, err := ParseSortKey("priciest"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestParseProductCategory(t *testing.T) {
	if _, err := ParseProductCategory("fridge"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	got, err := ParseProductCategory("tv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ProductCategoryTV {
		t.Fatalf("unexpected category %s", got)
	}
}
