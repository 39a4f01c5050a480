package main

import (
	"fmt"

	"github.com/tdewolff/argp"
	"github.com/vecpath/paths"
)

type Info struct {
	Precision int      `short:"p" default:"6" desc:"Number of significant digits"`
	Paths     []string `name:"path" index:"*" desc:"SVG path data"`
}

type Flatten struct {
	Flatness float64  `short:"f" default:"0.01" desc:"Maximum deviation from the exact curve"`
	Paths    []string `name:"path" index:"*" desc:"SVG path data"`
}

func main() {
	root := argp.New("Inspection tool for SVG path data")
	root.AddCmd(&Info{}, "info", "Print length, bounds and arc center parameterizations")
	root.AddCmd(&Flatten{}, "flatten", "Print the flattened polyline")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Info) Run() error {
	prec := cmd.Precision
	for _, arg := range cmd.Paths {
		p, err := paths.ParseSVGPath(arg)
		if err != nil {
			return err
		}
		fmt.Printf("length: %.*g\n", prec, p.Length())
		fmt.Printf("bounds: %v\n", p.Bounds())
		for _, c := range p.Curves {
			for i := 0; i < c.NumSegments(); i++ {
				seg := c.Segment(i)
				if seg.Command.Kind != paths.ArcKind {
					continue
				}
				params := seg.CenterParams()
				fmt.Printf("arc: center=%v radii=%v angles=[%.*g, %.*g] rotation=%.*g sweep=%t\n",
					params.Center, params.Radii,
					prec, params.Angles.Start, prec, params.Angles.End,
					prec, params.Rotation, params.Sweep)
			}
		}
	}
	return nil
}

func (cmd *Flatten) Run() error {
	for _, arg := range cmd.Paths {
		p, err := paths.ParseSVGPath(arg)
		if err != nil {
			return err
		}
		for _, poly := range p.Polylines(cmd.Flatness) {
			for _, pt := range poly {
				fmt.Println(pt)
			}
			fmt.Println()
		}
	}
	return nil
}
