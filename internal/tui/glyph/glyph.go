// Package glyph draws a single residue letter as large half-block art for
// the inspect panel.
package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSize is the point size glyphs are rasterized at before scaling down.
const FontSize = 64

// SystemFonts lists bold monospace and sans fonts tried by LoadSystem.
var SystemFonts = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansMono-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Menlo.ttc",
	"/System/Library/Fonts/Monaco.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\consolab.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// threshold is the gray level above which a half cell counts as ink.
const threshold = 40

// Renderer turns letters into block art and caches the result.
type Renderer struct {
	face   font.Face
	source string

	mu    sync.Mutex
	cache map[cacheKey]string
}

type cacheKey struct {
	r          rune
	cols, rows int
}

// New returns a renderer drawing with face.
func New(face font.Face, source string) *Renderer {
	return &Renderer{face: face, source: source, cache: make(map[cacheKey]string)}
}

// LoadSystem returns a renderer for the first usable font in SystemFonts.
// When none can be read it falls back to the built-in 7x13 bitmap face.
func LoadSystem() *Renderer {
	for _, path := range SystemFonts {
		face, err := LoadFile(path)
		if err == nil {
			return New(face, path)
		}
	}
	return New(basicfont.Face7x13, "builtin 7x13")
}

// LoadFile parses a font file. Collections (.ttc) and OpenType fonts go
// through opentype, plain TrueType through freetype.
func LoadFile(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font collection %s: %w", path, err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("font collection %s is empty", path)
		}
		fnt, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("reading font collection %s: %w", path, err)
		}
		return opentype.NewFace(fnt, &opentype.FaceOptions{Size: FontSize, DPI: 72})
	case ".otf":
		fnt, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", path, err)
		}
		return opentype.NewFace(fnt, &opentype.FaceOptions{Size: FontSize, DPI: 72})
	default:
		fnt, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", path, err)
		}
		return truetype.NewFace(fnt, &truetype.Options{Size: FontSize, DPI: 72, Hinting: font.HintingFull}), nil
	}
}

// Source names the font in use.
func (g *Renderer) Source() string {
	return g.source
}

// Render draws r in a cols x rows block of terminal cells. Each cell holds
// two vertical pixels via the half-block characters.
func (g *Renderer) Render(r rune, cols, rows int) string {
	if g == nil || g.face == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	key := cacheKey{r, cols, rows}
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.cache[key]; ok {
		return s
	}
	s := halfBlocks(scale(g.rasterize(r), cols, rows*2), cols, rows)
	g.cache[key] = s
	return s
}

// rasterize draws r white on black, centered with a small margin.
func (g *Renderer) rasterize(r rune) *image.Gray {
	bounds, _, ok := g.face.GlyphBounds(r)
	if !ok {
		bounds, _, _ = g.face.GlyphBounds('?')
		r = '?'
	}
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const margin = 2
	img := image.NewGray(image.Rect(0, 0, w+margin*2, h+margin*2))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: g.face,
		Dot:  fixed.P(margin-bounds.Min.X.Floor(), margin-bounds.Min.Y.Floor()),
	}
	d.DrawString(string(r))
	return img
}

// scale shrinks src to w x h by averaging each source area.
func scale(src *image.Gray, w, h int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		y0, y1 := y*sh/h, max((y+1)*sh/h, y*sh/h+1)
		for x := 0; x < w; x++ {
			x0, x1 := x*sw/w, max((x+1)*sw/w, x*sw/w+1)
			sum, n := 0, 0
			for sy := y0; sy < min(y1, sh); sy++ {
				for sx := x0; sx < min(x1, sw); sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(x, y, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

func halfBlocks(img *image.Gray, cols, rows int) string {
	on := func(x, y int) bool {
		return img.GrayAt(x, y).Y > threshold
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top, bottom := on(col, row*2), on(col, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
