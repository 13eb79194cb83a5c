package plot

import "github.com/KaramelBytes/tabstat-cli/internal/dataset"

// HistogramColumn draws a histogram of a dataset column. ok is false when
// the column does not exist.
func HistogramColumn(ds *dataset.Dataset, name string, width, height int) (string, bool) {
	values, ok := ds.ValidNumericColumn(name)
	if !ok {
		return "", false
	}
	return Histogram(name, values, width, height), true
}

// BoxplotColumn draws a boxplot of a dataset column.
func BoxplotColumn(ds *dataset.Dataset, name string, width int) (string, bool) {
	values, ok := ds.ValidNumericColumn(name)
	if !ok {
		return "", false
	}
	return Boxplot(name, values, width), true
}

// ScatterColumns plots column y against column x.
func ScatterColumns(ds *dataset.Dataset, xName, yName string, width, height int) (string, bool) {
	x, ok := ds.NumericColumn(xName)
	if !ok {
		return "", false
	}
	y, ok := ds.NumericColumn(yName)
	if !ok {
		return "", false
	}
	return Scatter(xName, yName, x, y, width, height), true
}
