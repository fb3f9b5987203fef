package survey

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"

	"gradefill/domain/fill"
)

// AxisExtent summarizes the numeric spread along one coordinate axis
type AxisExtent struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

// SiteExtent summarizes how far a fill's surveyed points spread. Only values
// that coerce to numbers contribute; a fill of free-text coordinates simply
// reports empty axes.
type SiteExtent struct {
	Easting   AxisExtent
	Northing  AxisExtent
	Elevation AxisExtent
}

// Summarize computes the site extent of the rows about to be written
func Summarize(rows []fill.Row) SiteExtent {
	var eastings, northings, elevations []float64
	for _, row := range rows {
		if v, ok := asFloat(row.Easting); ok {
			eastings = append(eastings, v)
		}
		if v, ok := asFloat(row.Northing); ok {
			northings = append(northings, v)
		}
		if v, ok := asFloat(row.Elevation); ok {
			elevations = append(elevations, v)
		}
	}
	return SiteExtent{
		Easting:   summarizeAxis(eastings),
		Northing:  summarizeAxis(northings),
		Elevation: summarizeAxis(elevations),
	}
}

func summarizeAxis(values []float64) AxisExtent {
	if len(values) == 0 {
		return AxisExtent{}
	}

	min, err := stats.Min(values)
	if err != nil {
		return AxisExtent{}
	}
	max, err := stats.Max(values)
	if err != nil {
		return AxisExtent{}
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return AxisExtent{}
	}

	return AxisExtent{
		Min:   min,
		Max:   max,
		Mean:  mean,
		Count: len(values),
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

func (a AxisExtent) String() string {
	if a.Count == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f..%.2f (mean %.2f)", a.Min, a.Max, a.Mean)
}

func (e SiteExtent) String() string {
	return fmt.Sprintf("easting %s, northing %s, elevation %s", e.Easting, e.Northing, e.Elevation)
}
