package statichuff

import (
	"strings"
	"testing"
)

func makeTestEncoding() *Encoding {
	var sb strings.Builder
	for _, row := range []struct {
		r rune
		n int
	}{{'a', 5}, {'b', 9}, {'c', 12}, {'d', 13}, {'e', 16}, {'f', 45}} {
		sb.WriteString(strings.Repeat(string(row.r), row.n))
	}
	return Derive(Build(Count(sb.String())))
}

func TestEncoding_Dump(t *testing.T) {
	e := makeTestEncoding()

	expectDump := strings.Join([]string{
		"Encoding{\n",
		"\tMinLen() = 1\n",
		"\tMaxLen() = 4\n",
		"\t'f' = \"0\"\n",
		"\t'c' = \"100\"\n",
		"\t'd' = \"101\"\n",
		"\t'e' = \"111\"\n",
		"\t'a' = \"1100\"\n",
		"\t'b' = \"1101\"\n",
		"}\n",
	}, "")
	actualDump := e.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoding_PrefixFree(t *testing.T) {
	for _, text := range []string{
		"abbca",
		"This is test data for generating a huffman encoding!",
		"the quick brown fox jumps over the lazy dog 0123456789",
	} {
		t.Run(text, func(t *testing.T) {
			e := Derive(Build(Count(text)))
			symbols := e.Symbols()
			for _, a := range symbols {
				pa, _ := e.Lookup(a)
				for _, b := range symbols {
					if a == b {
						continue
					}
					pb, _ := e.Lookup(b)
					if pb.HasPrefix(pa) {
						t.Errorf("path %s of %q is a prefix of path %s of %q", pa, rune(a), pb, rune(b))
					}
				}
			}
		})
	}
}

func TestEncoding_Inverse(t *testing.T) {
	const text = "This is test data for generating a huffman encoding!"
	table := Count(text)
	e := Derive(Build(table))

	if e.Len() != table.Len() {
		t.Errorf("expected %d symbols, got %d", table.Len(), e.Len())
	}
	if !e.Covers(table) {
		t.Errorf("encoding does not cover the table it was built from")
	}
	if e.Covers(Count("xyz")) {
		t.Errorf("encoding claims to cover symbols it lacks")
	}

	seen := make(map[Steps]Symbol, e.Len())
	for _, sym := range table.Symbols() {
		steps, found := e.Lookup(sym)
		if !found {
			t.Errorf("no path for %q", rune(sym))
			continue
		}
		if other, dup := seen[steps]; dup {
			t.Errorf("path %s shared by %q and %q", steps, rune(other), rune(sym))
		}
		seen[steps] = sym

		back, found := e.Resolve(steps)
		if !found || back != sym {
			t.Errorf("Resolve(%s): expected %q, got %q (found=%v)", steps, rune(sym), rune(back), found)
		}
		if steps.Len() < e.MinLen() || steps.Len() > e.MaxLen() {
			t.Errorf("path %s outside [%d, %d]", steps, e.MinLen(), e.MaxLen())
		}
	}

	if sym, found := e.Resolve(Steps{}); found || sym != InvalidSymbol {
		t.Errorf("empty path resolved to %d", sym)
	}
}

func TestEncoding_SingleSymbol(t *testing.T) {
	e := Derive(Build(Count("aaaa")))
	steps, found := e.Lookup('a')
	if !found {
		t.Fatalf("no path for 'a'")
	}
	expect := MakeSteps(1, 0)
	if steps != expect {
		t.Errorf("expected %s, got %s", expect, steps)
	}
	if e.MinLen() != 1 || e.MaxLen() != 1 {
		t.Errorf("expected lengths 1 .. 1, got %d .. %d", e.MinLen(), e.MaxLen())
	}
}
