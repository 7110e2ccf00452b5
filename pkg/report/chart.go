package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/natalierpayne/join-replicate-fqs/pkg/replicate"
)

var imageExt = map[string]bool{
	".png":  true,
	".svg":  true,
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".eps":  true,
	".tif":  true,
	".tiff": true,
}

// ReadCounts returns the per-pair labels and original/replicate read counts.
func ReadCounts(results []replicate.Result) (labels []string, original, rep []int) {
	for _, r := range results {
		labels = append(labels, filepath.Base(r.Replicate))
		original = append(original, r.OriginalReads)
		rep = append(rep, r.ReplicateReads)
	}
	return
}

func isHTML(ext string) bool { return ext == ".html" || ext == ".htm" }

// SupportedChart reports whether WriteChart can draw into path.
func SupportedChart(path string) bool {
	var ext = strings.ToLower(filepath.Ext(path))
	return isHTML(ext) || imageExt[ext]
}

// WriteChart draws reads per pair to path: html through go-echarts,
// image formats through gonum plot.
func WriteChart(path string, results []replicate.Result) (err error) {
	defer recoverErr(&err)

	var ext = strings.ToLower(filepath.Ext(path))
	switch {
	case isHTML(ext):
		PlotBarHTML(path, results)
	case imageExt[ext]:
		PlotBarImage(path, results)
	default:
		return fmt.Errorf("unsupported chart format %q", ext)
	}
	return nil
}

func generateBarItems(vs []int) []opts.BarData {
	var items = make([]opts.BarData, 0)
	for _, v := range vs {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

func PlotBarHTML(path string, results []replicate.Result) {
	var (
		bar    = charts.NewBar()
		output = osUtil.Create(path)

		labels, original, rep = ReadCounts(results)
	)
	defer simpleUtil.DeferClose(output)
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Reads per replicate pair",
			Subtitle: fmt.Sprintf("%d pairs", len(results)),
		}))

	bar.SetXAxis(labels).
		AddSeries("Original", generateBarItems(original)).
		AddSeries("Replicate", generateBarItems(rep))
	simpleUtil.CheckErr(bar.Render(output))
}

func toValues(vs []int) plotter.Values {
	var values = make(plotter.Values, len(vs))
	for i, v := range vs {
		values[i] = float64(v)
	}
	return values
}

func PlotBarImage(path string, results []replicate.Result) {
	var (
		p     = plot.New()
		width = vg.Points(20)

		labels, original, rep = ReadCounts(results)
	)
	p.Title.Text = "Reads per replicate pair"
	p.Y.Label.Text = "reads"

	bar1 := simpleUtil.HandleError(plotter.NewBarChart(toValues(original), width))
	bar1.LineStyle.Width = vg.Length(0)
	bar1.Color = plotutil.Color(0)
	bar1.Offset = -width / 2

	bar2 := simpleUtil.HandleError(plotter.NewBarChart(toValues(rep), width))
	bar2.LineStyle.Width = vg.Length(0)
	bar2.Color = plotutil.Color(1)
	bar2.Offset = width / 2

	p.Add(bar1, bar2)
	p.Legend.Add("Original", bar1)
	p.Legend.Add("Replicate", bar2)
	p.Legend.Top = true
	p.NominalX(labels...)

	simpleUtil.CheckErr(p.Save(vg.Length(max(len(labels), 4))*vg.Inch, 6*vg.Inch, path))
}
