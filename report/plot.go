package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"energy_models/fans"
)

// curveSamples is the number of flows at which the fan curve is drawn.
const curveSamples = 101

/*
PlotOperatingPoint draws the fan curve at speed, the system curve and their
intersection over the bracket, and saves the figure to path.

	Args:
	    fan: fan curve
	    system: system curve
	    speed: fan speed, rpm
	    q: equilibrium flow, m3/s
	    b: flow range of the horizontal axis, m3/s
	    path: output file; the extension selects the format (.png, .svg, .pdf)
*/
func PlotOperatingPoint(fan fans.FanCurve, system fans.SystemCurve, speed, q float64, b fans.Bracket, path string) error {
	if fan == nil || system == nil {
		return fmt.Errorf("%w: plot curves", fans.ErrNilCollaborator)
	}

	flows := floats.Span(make([]float64, curveSamples), b.Min, b.Max)
	fanXYs := make(plotter.XYs, len(flows))
	for i, f := range flows {
		dp, err := fan.PressureRise(f, speed)
		if err != nil {
			return fmt.Errorf("fan curve at %g m3/s: %w", f, err)
		}
		fanXYs[i] = plotter.XY{X: f, Y: dp}
	}
	dpOp, err := fan.PressureRise(q, speed)
	if err != nil {
		return fmt.Errorf("fan curve at %g m3/s: %w", q, err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Operating point at %g rpm", speed)
	p.X.Label.Text = "Flow (m3/s)"
	p.Y.Label.Text = "Pressure (Pa)"
	p.X.Min, p.X.Max = b.Min, b.Max

	fanLine, err := plotter.NewLine(fanXYs)
	if err != nil {
		return err
	}
	fanLine.Color = color.RGBA{R: 200, A: 255}
	fanLine.Width = vg.Points(1.5)

	sys := plotter.NewFunction(system)
	sys.XMin, sys.XMax = b.Min, b.Max
	sys.Samples = curveSamples
	sys.Color = color.RGBA{B: 200, A: 255}
	sys.Width = vg.Points(1.5)
	sys.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	op, err := plotter.NewScatter(plotter.XYs{{X: q, Y: dpOp}})
	if err != nil {
		return err
	}
	op.GlyphStyle.Shape = draw.CircleGlyph{}
	op.GlyphStyle.Radius = vg.Points(4)

	p.Add(plotter.NewGrid(), fanLine, sys, op)
	p.Legend.Add("fan", fanLine)
	p.Legend.Add("system", sys)
	p.Legend.Add(fmt.Sprintf("Q = %.3f m3/s", q), op)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
