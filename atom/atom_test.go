package atom

import (
	"fmt"
	"sync"
	"testing"
)

func TestPredefined(t *testing.T) {
	tab := NewTable()

	if got := tab.Len(); got != int(LastReserved) {
		t.Fatalf("Len() = %d, want %d", got, LastReserved)
	}

	tests := []struct {
		name string
		want Atom
	}{
		{"PRIMARY", 1},
		{"FONT", Font},
		{"ITALIC_ANGLE", ItalicAngle},
		{"X_HEIGHT", XHeight},
		{"QUAD_WIDTH", QuadWidth},
		{"WEIGHT", Weight},
		{"POINT_SIZE", PointSize},
		{"RESOLUTION", Resolution},
		{"FONT_NAME", FontName},
		{"FAMILY_NAME", FamilyName},
		{"FULL_NAME", FullName},
		{"CAP_HEIGHT", CapHeight},
		{"WM_TRANSIENT_FOR", LastReserved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tab.InternAtom(tt.name); got != tt.want {
				t.Errorf("InternAtom(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestInternIdempotent(t *testing.T) {
	tab := NewTable()

	a := tab.InternAtom("-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1")
	if a <= LastReserved {
		t.Fatalf("new atom %d collides with predefined range", a)
	}
	if b := tab.InternAtom("-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1"); b != a {
		t.Errorf("second InternAtom = %d, want %d", b, a)
	}
	if c := tab.InternAtom("other"); c != a+1 {
		t.Errorf("next atom = %d, want %d", c, a+1)
	}

	name, ok := tab.Name(a)
	if !ok || name != "-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1" {
		t.Errorf("Name(%d) = %q, %v", a, name, ok)
	}
	if _, ok := tab.Name(None); ok {
		t.Error("Name(None) should not resolve")
	}
	if _, ok := tab.Lookup("missing"); ok {
		t.Error("Lookup should not intern")
	}
}

func TestInternConcurrent(t *testing.T) {
	tab := NewTable()

	const workers = 8
	results := make([][]Atom, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				results[w] = append(results[w], tab.InternAtom(fmt.Sprintf("name-%d", i)))
			}
		}()
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range results[w] {
			if results[w][i] != results[0][i] {
				t.Fatalf("worker %d got atom %d for name-%d, worker 0 got %d", w, results[w][i], i, results[0][i])
			}
		}
	}
	if got := tab.Len(); got != int(LastReserved)+50 {
		t.Errorf("Len() = %d, want %d", got, int(LastReserved)+50)
	}
}
