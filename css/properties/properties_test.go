package properties

import "testing"

// Every longhand must have a name, a registry entry and an initial
// value: shorthand expansion relies on all three.
func TestRegistryTotality(t *testing.T) {
	for p := KnownProp(1); p < NbProperties; p++ {
		if p.String() == "" {
			t.Fatalf("property %d has no name", p)
		}
		if PropertyFromName[p.String()] != p {
			t.Fatalf("%s: name lookup is not the inverse of String", p)
		}
		desc := Describe(p)
		if desc.Types == 0 && len(desc.Keywords) == 0 {
			t.Fatalf("%s: empty registry entry", p)
		}
		if _, in := InitialValues[p]; !in {
			t.Fatalf("%s: missing initial value", p)
		}
	}
}

func TestShorthandTables(t *testing.T) {
	for s := Shorthand(1); s < NbShorthands; s++ {
		if s.String() == "" {
			t.Fatalf("shorthand %d has no name", s)
		}
		if ShorthandFromName[s.String()] != s {
			t.Fatalf("%s: name lookup is not the inverse of String", s)
		}
		longhands := Longhands[s]
		if len(longhands) == 0 {
			t.Fatalf("%s: no longhands", s)
		}
		seen := map[KnownProp]bool{}
		for _, p := range longhands {
			if p == 0 || p >= NbProperties {
				t.Fatalf("%s: invalid longhand %d", s, p)
			}
			if seen[p] {
				t.Fatalf("%s: duplicate longhand %s", s, p)
			}
			seen[p] = true
		}
	}
}

func TestDimensionString(t *testing.T) {
	if got := (Dimension{Unit: Px, Value: 1.5}).String(); got != "1.5px" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (Dimension{Unit: Perc, Value: 50}).String(); got != "50%" {
		t.Fatalf("unexpected %q", got)
	}
}
