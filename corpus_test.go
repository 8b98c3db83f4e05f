package chfloat

import (
	"bufio"
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

type tester interface {
	Fatal(args ...interface{})
}

func loadCompressed(t tester, file string) []byte {
	f, err := os.Open(filepath.Join("testdata", file))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(dec); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestParseFloat64Corpus runs the compressed vector corpus: one input and its
// expected bit pattern per line.
func TestParseFloat64Corpus(t *testing.T) {
	sc := bufio.NewScanner(bytes.NewReader(loadCompressed(t, "parsefloat64.txt.gz")))
	lines := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		in, bitsHex, found := strings.Cut(line, "\t")
		if !found {
			t.Fatalf("corpus line %d: no separator in %q", lines, line)
		}
		want, err := strconv.ParseUint(bitsHex, 16, 64)
		if err != nil {
			t.Fatal(err)
		}
		lines++
		v, n, err := ParseFloat64([]byte(in))
		if err != nil {
			t.Fatalf("ParseFloat64(%q): got: %v want: nil", in, err)
		}
		if n != len(in) {
			t.Fatalf("ParseFloat64(%q): got: %d bytes want: %d", in, n, len(in))
		}
		if got := math.Float64bits(v); got != want {
			t.Errorf("ParseFloat64(%q): got: %016x want: %016x", in, got, want)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if lines < 1000 {
		t.Fatalf("corpus too small: %d lines", lines)
	}
}

func TestParseFloat32Corpus(t *testing.T) {
	sc := bufio.NewScanner(bytes.NewReader(loadCompressed(t, "parsefloat32.txt.gz")))
	lines := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		in, bitsHex, found := strings.Cut(line, "\t")
		if !found {
			t.Fatalf("corpus line %d: no separator in %q", lines, line)
		}
		want64, err := strconv.ParseUint(bitsHex, 16, 32)
		if err != nil {
			t.Fatal(err)
		}
		want := uint32(want64)
		lines++
		v, n, err := ParseFloat32([]byte(in))
		if err != nil {
			t.Fatalf("ParseFloat32(%q): got: %v want: nil", in, err)
		}
		if n != len(in) {
			t.Fatalf("ParseFloat32(%q): got: %d bytes want: %d", in, n, len(in))
		}
		if got := math.Float32bits(v); got != want {
			t.Errorf("ParseFloat32(%q): got: %08x want: %08x", in, got, want)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if lines < 1000 {
		t.Fatalf("corpus too small: %d lines", lines)
	}
}
