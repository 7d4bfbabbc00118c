package viewhelpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/thenoetrevino/facetview/internal/models"
)

// FilterValueDisplay returns the display string for a facet value.
// Ranges show their name when set, otherwise their bounds.
func FilterValueDisplay(value models.FieldValue) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case models.FilterValueRange:
		return rangeDisplay(v)
	case *models.FilterValueRange:
		if v == nil {
			return ""
		}
		return rangeDisplay(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func rangeDisplay(r models.FilterValueRange) string {
	if r.Name != "" {
		return r.Name
	}
	from := FilterValueDisplay(r.From)
	to := FilterValueDisplay(r.To)
	switch {
	case from != "" && to != "":
		return from + " - " + to
	case from != "":
		return from + "+"
	case to != "":
		return "up to " + to
	}
	return ""
}
