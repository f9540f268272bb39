package highlights

import (
	"math"
	"sort"
	"time"

	"github.com/forPelevin/goalcut/internal/types"
)

// Merge unions peak and keyword times, sorts them and drops every time that is
// within minSeparation of its immediate predecessor in the sorted union. The
// predecessor is compared whether or not it was kept itself, unlike Coalesce.
func Merge(peaks, keywords []float64, minSeparation float64) []float64 {
	all := make([]float64, 0, len(peaks)+len(keywords))
	all = append(all, peaks...)
	all = append(all, keywords...)
	if len(all) == 0 {
		return nil
	}
	sort.Float64s(all)

	out := []float64{all[0]}
	for i := 1; i < len(all); i++ {
		if all[i]-all[i-1] > minSeparation {
			out = append(out, all[i])
		}
	}
	return out
}

// BuildWindows expands each highlight t into [t-halfWidth, t+halfWidth].
// Highlights whose window would start before zero are skipped, not clamped.
func BuildWindows(highlights []float64, halfWidth float64) []types.ClipWindow {
	half := dur(halfWidth)
	var out []types.ClipWindow
	for _, t := range highlights {
		if t-halfWidth < 0 {
			continue
		}
		center := dur(t)
		out = append(out, types.ClipWindow{
			Highlight: t,
			Start:     center - half,
			End:       center + half,
		})
	}
	return out
}

func dur(sec float64) time.Duration { return time.Duration(math.Round(sec * float64(time.Second))) }
