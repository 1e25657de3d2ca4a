package tabulatedfunction

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DrawPS plots f into a PostScript file.
func (f *TabulatedFunction) DrawPS(path string) error {
	ps, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WritePS(ps); err != nil {
		ps.Close()
		return err
	}
	return ps.Close()
}

// WritePS writes a PostScript page with the polyline through the points of
// f and a dot on every point.
func (f *TabulatedFunction) WritePS(w io.Writer) error {
	ps := bufio.NewWriter(w)

	xmin, xmax := f.LeftBorder(), f.RightBorder()
	ymin, ymax := f.Ymin(), f.Ymax()
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	// 1% margin on every side
	dx, dy := (xmax-xmin)/100, (ymax-ymin)/100

	fmt.Fprintf(ps, `%%!PS
/line_color {.5 .5 .5} def
/dot_color {.1 .1 .1} def
/radius 1 def
/Xmin %v def
/Xsize %v def
/Ymin %v def
/Ysize %v def
/w currentpagedevice /PageSize get 0 get def
/h currentpagedevice /PageSize get 1 get def

/Translate { %% x y Translate
	Ymin sub h mul Ysize div
	exch
	Xmin sub w mul Xsize div
	exch
} bind def
`, xmin-dx, xmax-xmin+2*dx, ymin-dy, ymax-ymin+2*dy)

	fmt.Fprintf(ps, "/XValues [\n")
	for i, p := range f.table() {
		fmt.Fprintf(ps, " %s\t%% %d\n", formatFloat(p.X), i)
	}
	fmt.Fprintf(ps, "] def\n/YValues [\n")
	for i, p := range f.table() {
		fmt.Fprintf(ps, " %s\t%% %d\n", formatFloat(p.Y), i)
	}
	fmt.Fprintf(ps, "] def\n")

	fmt.Fprintf(ps, `
%% lines
newpath
line_color setrgbcolor
XValues 0 get YValues 0 get Translate moveto
1 1 XValues length 1 sub {
	dup XValues exch get exch YValues exch get Translate lineto
} for
stroke

%% dots
dot_color setrgbcolor
0 1 XValues length 1 sub {
	dup XValues exch get exch YValues exch get Translate
	newpath radius 0 360 arc stroke
} for

showpage
`)
	return ps.Flush()
}
