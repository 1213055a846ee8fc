package xfont

import (
	"testing"

	"github.com/gogpu/xfont/internal/backendtest"
	"github.com/gogpu/xfont/xlfd"
)

const (
	nameUnicode   = "-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso10646-1"
	nameLatin1    = "-adobe-helvetica-medium-r-normal--12-120-75-75-p-70-iso8859-1"
	nameBoldItal  = "-adobe-helvetica-bold-i-normal--12-120-75-75-p-70-iso8859-1"
	nameHebrew    = "-misc-fixed-medium-r-normal--13-120-75-75-p-70-iso8859-8"
	nameBogusSize = "-misc-fixed-medium-r-normal--bogus-120-75-75-c-70-iso8859-1"
)

func newFakeBackend() *backendtest.Backend {
	return backendtest.New()
}

func mustParse(t *testing.T, name string) xlfd.FontSpec {
	t.Helper()
	s, err := xlfd.Parse(name)
	if err != nil {
		t.Fatalf("Parse(%q): %v", name, err)
	}
	return s
}

func mustBuild(t *testing.T, b *backendtest.Backend, name string, opts ...BuildOption) *Font {
	t.Helper()
	f, err := Build(b, mustParse(t, name), opts...)
	if err != nil {
		t.Fatalf("Build(%q): %v", name, err)
	}
	return f
}
