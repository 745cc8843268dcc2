package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronos-tachyon/statichuff"
	"github.com/chronos-tachyon/statichuff/container"
)

func TestRun_EncodeDecode(t *testing.T) {
	dir := t.TempDir()

	type testRow struct {
		name    string
		content []byte
		flags   []string
	}

	testData := [...]testRow{
		{name: "text.txt", content: []byte("This is test data for generating a huffman encoding!\n")},
		{name: "empty.txt", content: nil},
		{name: "single.txt", content: []byte("aaaaaaaaaaaaaaaa")},
		{name: "binary.bin", content: []byte{0xff, 0xfe, 0x00, 0x01, 0xff, 0xff}},
		{name: "forced.txt", content: []byte("héllo wörld"), flags: []string{"-bytes"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			path := filepath.Join(dir, row.name)
			if err := os.WriteFile(path, row.content, 0o644); err != nil {
				t.Fatal(err)
			}

			var stdout, stderr bytes.Buffer
			args := append([]string{"encode", "-quiet"}, row.flags...)
			if code := run(append(args, path), &stdout, &stderr); code != 0 {
				t.Fatalf("encode exited %d: %s", code, stderr.String())
			}
			if err := os.Remove(path); err != nil {
				t.Fatal(err)
			}

			if code := run([]string{"decode", "-quiet", path + ".huff"}, &stdout, &stderr); code != 0 {
				t.Fatalf("decode exited %d: %s", code, stderr.String())
			}
			actual, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(row.content, actual) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.content, actual)
			}
		})
	}
}

func TestRun_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte(filepath.Base(p)+" contents"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"encode", "-quiet", "-ext", ".hf", a + "," + b}, &stdout, &stderr); code != 0 {
		t.Fatalf("encode exited %d: %s", code, stderr.String())
	}
	for _, p := range []string{a, b} {
		if _, err := os.Stat(p + ".hf"); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}

	// Outputs exist already; decode must refuse without -force.
	if code := run([]string{"decode", "-quiet", "-ext", ".hf", a + ".hf"}, &stdout, &stderr); code == 0 {
		t.Errorf("decode overwrote %s without -force", a)
	}
	if code := run([]string{"decode", "-quiet", "-force", "-ext", ".hf", a + ".hf"}, &stdout, &stderr); code != 0 {
		t.Errorf("decode -force exited %d: %s", code, stderr.String())
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.huff")
	if err := os.WriteFile(garbage, []byte("not a container"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"encode", "-quiet"},
		{"encode", "-quiet", filepath.Join(dir, "missing.txt")},
		{"decode", "-quiet", garbage},
		{"demo", "abc", "abcd"},
	} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code == 0 {
			t.Errorf("run(%q) succeeded", args)
		}
	}
}

func TestRun_Demo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"demo"}, &stdout, &stderr); code != 0 {
		t.Fatalf("demo exited %d: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"Tree{\n", "Encoding{\n", "Encoded (", demoEncodeText + "\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output lacks %q:\n%s", want, out)
		}
	}

	stdout.Reset()
	if code := run([]string{"demo", ""}, &stdout, &stderr); code != 0 {
		t.Fatalf("demo of empty text exited %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "nothing to encode") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
}

func TestRun_EncodeRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"encode", "-quiet", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("encode exited %d: %s", code, stderr.String())
	}
	first, err := os.ReadFile(path + ".huff")
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("second, longer contents"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run([]string{"encode", "-quiet", path}, &stdout, &stderr); code == 0 {
		t.Errorf("encode overwrote %s.huff without -force", path)
	}
	if actual, _ := os.ReadFile(path + ".huff"); !bytes.Equal(first, actual) {
		t.Errorf("%s.huff changed without -force", path)
	}

	if code := run([]string{"encode", "-quiet", "-force", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("encode -force exited %d: %s", code, stderr.String())
	}
	if actual, _ := os.ReadFile(path + ".huff"); bytes.Equal(first, actual) {
		t.Errorf("encode -force did not replace %s.huff", path)
	}
}

func TestRun_DecodeDeepTree(t *testing.T) {
	// Fibonacci weights make every merge extend one chain, so 40 symbols
	// give paths of 39 steps.
	table := make(statichuff.FrequencyTable)
	a, b := uint64(1), uint64(1)
	for i := 0; i < 40; i++ {
		table[statichuff.Symbol('A'+i)] = a
		a, b = b, a+b
	}

	var buf bytes.Buffer
	f := &container.File{
		Kind:        container.KindText,
		Frequencies: table,
		Data:        statichuff.EncodedData{Bytes: []byte{0x00}, LastByteLen: 8},
	}
	if err := container.Write(&buf, f); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "deep.huff")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"decode", "-quiet", path}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit status 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "too deep") {
		t.Errorf("expected a depth error, got %q", stderr.String())
	}
}
