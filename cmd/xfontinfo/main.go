// Command xfontinfo builds X fonts from XLFD names and prints what a
// QueryFont reply would carry.
//
// Usage:
//
//	xfontinfo [flags] name...
//
// Names are XLFD names or the aliases "cursor" and "fixed".
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/gogpu/xfont"
	"github.com/gogpu/xfont/backend"
	"github.com/gogpu/xfont/backend/pixmap"
	_ "github.com/gogpu/xfont/backend/sfnt"
	"github.com/gogpu/xfont/xlfd"
)

func main() {
	var (
		backendName = flag.String("backend", backend.NameSFNT, "font backend")
		chars       = flag.Bool("chars", false, "print the character table")
		full        = flag.Bool("full", false, "measure the whole advertised range of ISO10646 fonts")
		scale       = flag.Float64("scale", xfont.DefaultPixelScale, "factor applied to the XLFD pixel size")
		render      = flag.String("render", "", "sample text to draw")
		output      = flag.String("output", "sample.png", "PNG file for -render")
		verbose     = flag.Bool("v", false, "log font resolution")
	)
	flag.Parse()
	initDisplay()

	if *verbose {
		xfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if flag.NArg() == 0 {
		pterm.Error.Println("no font names given")
		flag.Usage()
		os.Exit(2)
	}

	b, err := backend.Get(*backendName)
	if err != nil {
		pterm.Error.Printf("%v (available: %v)\n", err, backend.Available())
		os.Exit(1)
	}

	status := 0
	for _, name := range flag.Args() {
		spec, err := xlfd.Parse(name)
		if err != nil {
			pterm.Error.Println(err)
			status = 1
			continue
		}
		f, err := xfont.Build(b, spec,
			xfont.WithDeclaredName(name),
			xfont.WithPixelScale(*scale),
			xfont.WithFullRange(*full),
		)
		if err != nil {
			pterm.Error.Println(err)
			status = 1
			continue
		}

		printSpec(spec)
		printFont(f)
		if *chars {
			printChars(f)
		}
		if *render != "" {
			if err := renderSample(b, f, *render, *output); err != nil {
				pterm.Error.Println(err)
				status = 1
			}
		}
	}
	os.Exit(status)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printSpec(spec xlfd.FontSpec) {
	pterm.Info.Println(spec.Name())
	if spec.Alias() != xlfd.AliasNone {
		pterm.Printf("alias %s\n", spec.Alias())
		return
	}
	data := [][]string{{"Field", "Value"}}
	for i := range xlfd.NumFields {
		field := xlfd.Field(i)
		data = append(data, []string{field.String(), spec.Field(field)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printFont(f *xfont.Font) {
	d := f.Face().Descriptor()
	reply := f.QueryFontReply(0)
	size := len(reply.Append(nil, binary.BigEndian))

	data := [][]string{
		{"Property", "Value"},
		{"family", d.Family.Name()},
		{"bold/italic", fmt.Sprintf("%t/%t", d.Bold, d.Italic)},
		{"pixel size", formatSize(d.PixelSize)},
		{"char range", fmt.Sprintf("%d..%d", f.MinCharOrByte2(), f.MaxCharOrByte2())},
		{"chars measured", strconv.Itoa(f.NumChars())},
		{"default char", strconv.Itoa(int(f.DefaultChar()))},
		{"draw direction", direction(f.DrawDirection())},
		{"font ascent/descent", fmt.Sprintf("%d/%d", f.FontAscent(), f.FontDescent())},
		{"min bounds", formatCharInfo(f.MinBounds())},
		{"max bounds", formatCharInfo(f.MaxBounds())},
		{"properties", strconv.Itoa(f.Properties().Len())},
		{"reply", fmt.Sprintf("%d bytes, length %d", size, reply.Length())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printChars(f *xfont.Font) {
	data := [][]string{{"Code", "Char", "LSB", "RSB", "Width", "Ascent", "Descent"}}
	first := int(f.MinCharOrByte2())
	for i, ci := range f.Chars() {
		code := first + i
		data = append(data, []string{
			fmt.Sprintf("%#04x", code),
			strconv.QuoteRune(rune(code)),
			strconv.Itoa(int(ci.LeftSideBearing)),
			strconv.Itoa(int(ci.RightSideBearing)),
			strconv.Itoa(int(ci.CharacterWidth)),
			strconv.Itoa(int(ci.Ascent)),
			strconv.Itoa(int(ci.Descent)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderSample(b backend.Backend, f *xfont.Font, text, path string) error {
	r := xfont.NewTextRenderer(b)
	const margin = 8
	box := r.Bounds(f, text, margin, margin+int(f.MaxBounds().Ascent))

	p := pixmap.New(box.Max.X+margin, box.Max.Y+margin)
	gc := &backend.GC{Foreground: 0x000000, Background: 0xffffff}
	p.Clear(backend.PixelColor(gc.Background))
	if err := r.Draw(p, gc, f, text, box.Min.X, margin+int(f.MaxBounds().Ascent), box); err != nil {
		return err
	}
	if err := p.SavePNG(path); err != nil {
		return err
	}
	pterm.Info.Printf("rendered %q to %s (%dx%d)\n", text, path, p.Width(), p.Height())
	return nil
}

func formatSize(px float64) string {
	if px == 0 {
		return "backend default"
	}
	return strconv.FormatFloat(px, 'f', -1, 64)
}

func formatCharInfo(c xfont.CharInfo) string {
	return fmt.Sprintf("lsb=%d rsb=%d width=%d ascent=%d descent=%d",
		c.LeftSideBearing, c.RightSideBearing, c.CharacterWidth, c.Ascent, c.Descent)
}

func direction(d uint8) string {
	if d == xfont.RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}
