package glyph

import (
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestRenderShape(t *testing.T) {
	g := New(basicfont.Face7x13, "test")
	out := g.Render('K', 8, 4)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 8 {
			t.Errorf("line %d has %d cells, want 8", i, n)
		}
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("K rendered blank")
	}
}

func TestRenderCaches(t *testing.T) {
	g := New(basicfont.Face7x13, "test")
	a := g.Render('W', 6, 3)
	if len(g.cache) != 1 {
		t.Fatalf("cache size = %d", len(g.cache))
	}
	if b := g.Render('W', 6, 3); a != b {
		t.Fatal("cached render differs")
	}
	g.Render('W', 4, 2)
	if len(g.cache) != 2 {
		t.Fatalf("cache size = %d, want 2", len(g.cache))
	}
}

func TestRenderDegenerate(t *testing.T) {
	var nilRenderer *Renderer
	if nilRenderer.Render('A', 4, 4) != "" {
		t.Fatal("nil renderer should draw nothing")
	}
	g := New(basicfont.Face7x13, "test")
	if g.Render('A', 0, 4) != "" {
		t.Fatal("zero width should draw nothing")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/does/not/exist.ttf"); err == nil {
		t.Fatal("expected error")
	}
}
