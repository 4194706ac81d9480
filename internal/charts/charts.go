// Package charts renders the simulator's numeric output as PNG images: the
// classic overlaid-trajectory "spaghetti" view and a single Wiener process
// realization. It only consumes core outputs; it never computes them.
package charts

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"github.com/jwaldner/optionslab/internal/simulation"
)

const (
	chartWidth  = 1000
	chartHeight = 600
)

// axisLabels builds one label per step so every series aligns with the
// x axis; SplitNumber keeps the rendered axis readable.
func axisLabels(points int) []string {
	labels := make([]string, points)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
	}
	return labels
}

func yRange(series [][]float64) (float64, float64) {
	yMin, yMax := series[0][0], series[0][0]
	for _, s := range series {
		for _, v := range s {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	pad := (yMax - yMin) * 0.05
	return yMin - pad, yMax + pad
}

// RenderPaths draws every trajectory of the ensemble overlaid in one line
// chart, x axis as step index and y axis as price.
func RenderPaths(paths simulation.Ensemble, title string) ([]byte, error) {
	if paths.PathCount() == 0 {
		return nil, errors.New("empty ensemble")
	}

	values := make([][]float64, len(paths))
	for i, path := range paths {
		values[i] = path
	}
	yMin, yMax := yRange(values)

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        axisLabels(len(paths[0])),
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 10,
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render path chart: %w", err)
	}
	return painter.Bytes()
}

// RenderWiener draws one Wiener process realization.
func RenderWiener(w []float64, title string) ([]byte, error) {
	if len(w) == 0 {
		return nil, errors.New("empty realization")
	}

	values := [][]float64{w}
	yMin, yMax := yRange(values)

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        axisLabels(len(w)),
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 10,
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render wiener chart: %w", err)
	}
	return painter.Bytes()
}
