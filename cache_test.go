package xfont

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/xfont/atom"
	"github.com/gogpu/xfont/internal/backendtest"
	"github.com/gogpu/xfont/xlfd"
)

func countOps(b *backendtest.Backend, op string) int {
	return len(b.Log.Ops(op))
}

func TestCacheLoadShares(t *testing.T) {
	b := newFakeBackend()
	c := NewCache(b, 0)

	f1, err := c.Load(nameLatin1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f2, err := c.Load(nameLatin1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f1 != f2 {
		t.Error("the same name built two fonts")
	}
	if n := countOps(b, backendtest.OpNewFace); n != 1 {
		t.Errorf("NewFace called %d times, want 1", n)
	}
	if f1.Name() != nameLatin1 {
		t.Errorf("Name() = %q, want %q", f1.Name(), nameLatin1)
	}
}

func TestCacheLoadKeepsSpelling(t *testing.T) {
	atoms := atom.NewTable()
	c := NewCache(newFakeBackend(), 0, WithAtoms(atoms))

	const upper = "-ADOBE-Helvetica-medium-r-normal--12-120-75-75-p-70-iso8859-1"
	f1, err := c.Load(nameLatin1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f2, err := c.Load(upper)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f1 == f2 {
		t.Fatal("names differing in case share one declared name")
	}
	for _, tt := range []struct {
		f    *Font
		name string
	}{
		{f1, nameLatin1},
		{f2, upper},
	} {
		if tt.f.Name() != tt.name {
			t.Errorf("Name() = %q, want %q", tt.f.Name(), tt.name)
		}
		v, ok := tt.f.Properties().Get(atom.Font)
		if !ok {
			t.Fatalf("%s: FONT property missing", tt.name)
		}
		if got, _ := atoms.Name(v); got != tt.name {
			t.Errorf("FONT value names %q, want %q", got, tt.name)
		}
	}
	if diff := cmp.Diff(f1.Chars(), f2.Chars()); diff != "" {
		t.Errorf("case variants measure differently (-lower +upper):\n%s", diff)
	}
}

func TestCacheFontProperty(t *testing.T) {
	atoms := atom.NewTable()
	b := newFakeBackend()
	c := NewCache(b, 0, WithAtoms(atoms))
	if c.Atoms() != atoms {
		t.Error("Atoms() is not the table passed WithAtoms")
	}

	f, err := c.Load("fixed")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v, ok := f.Properties().Get(atom.Font)
	if !ok {
		t.Fatal("FONT property missing")
	}
	if name, _ := atoms.Name(v); name != "fixed" {
		t.Errorf("FONT value names %q, want fixed", name)
	}
}

func TestCacheLoadErrors(t *testing.T) {
	b := newFakeBackend()
	b.Strict = true
	c := NewCache(b, 0)

	if _, err := c.Load("no-hyphen"); !errors.Is(err, xlfd.ErrInvalidFontSpec) {
		t.Errorf("Load(no-hyphen) = %v, want ErrInvalidFontSpec", err)
	}
	if _, err := c.Load(nameLatin1); !errors.Is(err, ErrFontResolution) {
		t.Errorf("Load(unknown family) = %v, want ErrFontResolution", err)
	}

	// Failures are not cached.
	b.Known = []string{"helvetica"}
	if _, err := c.Load(nameLatin1); err != nil {
		t.Errorf("Load after the family appeared: %v", err)
	}
}

func TestCacheOpenClose(t *testing.T) {
	b := newFakeBackend()
	c := NewCache(b, 0)

	f, err := c.OpenFont(0x200001, "cursor")
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	if got, ok := c.Font(0x200001); !ok || got != f {
		t.Errorf("Font(id) = %v, %v; want the opened font", got, ok)
	}
	if _, err := c.OpenFont(0x200001, "fixed"); !errors.Is(err, ErrFontIDInUse) {
		t.Errorf("OpenFont(same id) = %v, want ErrFontIDInUse", err)
	}

	// A second id shares the built font.
	g, err := c.OpenFont(0x200002, "cursor")
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	if g != f {
		t.Error("second id got a different font for the same name")
	}

	// Another spelling reports itself in the FONT property.
	h, err := c.OpenFont(0x200003, "CURSOR")
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	v, _ := h.Properties().Get(atom.Font)
	if name, _ := c.Atoms().(*atom.Table).Name(v); name != "CURSOR" {
		t.Errorf("FONT value names %q, want CURSOR", name)
	}

	if !c.CloseFont(0x200001) {
		t.Error("CloseFont(open id) = false")
	}
	if c.CloseFont(0x200001) {
		t.Error("CloseFont(closed id) = true")
	}
	if _, ok := c.Font(0x200001); ok {
		t.Error("Font(closed id) still found")
	}

	c.Close()
	if _, ok := c.Font(0x200002); ok {
		t.Error("Font(id) found after Close")
	}
}

func TestCacheCloseLogsStats(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := NewCache(newFakeBackend(), 0)
	for _, name := range []string{"cursor", "cursor", "fixed"} {
		if _, err := c.Load(name); err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
	}
	c.Close()

	var line string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "font cache closed") {
			line = l
		}
	}
	if line == "" {
		t.Fatalf("no cache stats record in:\n%s", buf.String())
	}
	for _, want := range []string{"fonts=2", "hits=1", "misses=2", "evictions=0"} {
		if !strings.Contains(line, want) {
			t.Errorf("stats record %q lacks %s", line, want)
		}
	}
}

func TestCacheListFonts(t *testing.T) {
	c := NewCache(newFakeBackend(), 0)
	c.AddNames(nameLatin1, nameUnicode, nameLatin1)

	tests := []struct {
		pattern string
		limit   int
		want    []string
	}{
		{"*", 0, []string{"cursor", "fixed", nameLatin1, nameUnicode}},
		{"*", 2, []string{"cursor", "fixed"}},
		{"-adobe-*", 0, []string{nameLatin1}},
		{"*-ISO10646-1", 0, []string{nameUnicode}},
		{"f?xed", 0, []string{"fixed"}},
		{"nothing*", 0, nil},
	}
	for _, tt := range tests {
		got := c.ListFonts(tt.pattern, tt.limit)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ListFonts(%q, %d) mismatch (-want +got):\n%s", tt.pattern, tt.limit, diff)
		}
	}
}

func TestCacheConcurrentLoad(t *testing.T) {
	b := newFakeBackend()
	c := NewCache(b, 0)

	const workers = 16
	fonts := make([]*Font, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := c.Load(nameUnicode)
			if err != nil {
				t.Errorf("Load: %v", err)
				return
			}
			fonts[i] = f
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if fonts[i] != fonts[0] {
			t.Fatalf("worker %d got a different font", i)
		}
	}
	if n := countOps(b, backendtest.OpNewFace); n != 1 {
		t.Errorf("NewFace called %d times, want 1", n)
	}
}
