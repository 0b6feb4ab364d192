package transparentlogo

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// ErrUnknownFilter is returned by ParseFilter for names it does not know.
var ErrUnknownFilter = errors.New("unknown resampling filter")

// Lanczos3 is the three-lobe Lanczos windowed sinc. It gives the smooth
// edges expected of a logo downscale, at a higher cost than CatmullRom.
var Lanczos3 = &draw.Kernel{Support: 3, At: lanczos3}

var filters = map[string]draw.Interpolator{
	"lanczos":    Lanczos3,
	"catmullrom": draw.CatmullRom,
	"bilinear":   draw.BiLinear,
	"approx":     draw.ApproxBiLinear,
	"nearest":    draw.NearestNeighbor,
}

// ParseFilter maps a filter name to its interpolator. Names are case
// insensitive and an empty name selects DefaultFilter.
func ParseFilter(name string) (draw.Interpolator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultFilter
	}

	if q, ok := filters[key]; ok {
		return q, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFilter, name, strings.Join(FilterNames(), ", "))
}

// FilterNames lists the accepted filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lanczos3 is only called with t in [0, 3).
func lanczos3(t float64) float64 {
	if t == 0 {
		return 1
	}
	return sinc(t) * sinc(t/3)
}

func sinc(x float64) float64 {
	x *= math.Pi
	return math.Sin(x) / x
}
