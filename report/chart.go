package report

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Omar-Awad/SCNN-GPU2/validate"
)

// WriteErrorChart renders one bar per layer of its maximum absolute
// validation error to an SVG file at path, in layer order.
func WriteErrorChart(path string, reports []validate.Report) error {
	p := plot.New()
	p.Title.Text = "validation max abs error by layer"
	p.Y.Label.Text = "max abs error"
	p.X.Tick.Label.Rotation = -0.7

	values := make(plotter.Values, len(reports))
	names := make([]string, len(reports))
	for i, r := range reports {
		values[i] = r.MaxAbsError
		names[i] = r.LayerName
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("report: building bar chart: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(names...)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return fmt.Errorf("report: rendering chart: %w", err)
	}
	_, err = writer.WriteTo(f)
	return err
}
