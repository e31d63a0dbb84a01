package anomaly

import (
	"fmt"
	"math"
	"strings"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

type featureStats struct {
	mean float64
	std  float64
}

// Detector scores feature vectors against a statistical baseline frozen over
// the first baselineSize observations.
//
// The window-filling call computes per-feature mean and sample standard
// deviation (dividing by n-1), freezes them and already scores that same
// vector; the baseline is never re-estimated afterwards. Drift handling is out
// of scope. Evaluate mutates the buffering state, so concurrent evaluators
// must serialize access.
type Detector struct {
	baselineSize int
	zThreshold   float64

	window   []model.FeatureVector
	baseline map[string]featureStats
}

// NewDetector builds a detector. A baseline size below 1 is clamped to 1.
func NewDetector(baselineSize int, zThreshold float64) *Detector {
	if baselineSize < 1 {
		baselineSize = 1
	}
	return &Detector{baselineSize: baselineSize, zThreshold: zThreshold}
}

// Ready reports whether the baseline has been frozen.
func (d *Detector) Ready() bool {
	return d.baseline != nil
}

// Evaluate records fv and, once the baseline is frozen, scores it. It never
// fails: degenerate inputs such as a zero-variance feature yield a zero
// z-score instead of an error.
func (d *Detector) Evaluate(blockIndex uint64, fv model.FeatureVector) model.Detection {
	det := model.Detection{BlockIndex: blockIndex}

	if d.baseline == nil {
		d.window = append(d.window, fv)
		if len(d.window) < d.baselineSize {
			det.Reason = fmt.Sprintf("baseline warming up (%d/%d blocks)", len(d.window), d.baselineSize)
			return det
		}
		d.freezeBaseline()
		d.window = nil
	}

	det.Ready = true
	det.ZScores = make(map[string]float64, 4)
	var offenders []string
	for _, f := range fv.Fields() {
		st := d.baseline[f.Name]
		z := zScore(f.Value, st.mean, st.std)
		det.ZScores[f.Name] = z
		if math.Abs(z) > d.zThreshold {
			offenders = append(offenders, f.Name)
		}
	}

	if len(offenders) > 0 {
		det.IsAnomaly = true
		det.Reason = fmt.Sprintf("anomalous features: %s (|z| > %.2f)", strings.Join(offenders, ", "), d.zThreshold)
	} else {
		det.Reason = "within normal range"
	}
	return det
}

func (d *Detector) freezeBaseline() {
	samples := make(map[string][]float64, 4)
	for _, fv := range d.window {
		for _, f := range fv.Fields() {
			samples[f.Name] = append(samples[f.Name], f.Value)
		}
	}
	d.baseline = make(map[string]featureStats, len(samples))
	for name, vs := range samples {
		d.baseline[name] = featureStats{mean: mean(vs), std: sampleStdDev(vs)}
	}
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// sampleStdDev divides by n-1; a single-sample window has zero deviation.
func sampleStdDev(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	m := mean(vs)
	var sum float64
	for _, v := range vs {
		dev := v - m
		sum += dev * dev
	}
	return math.Sqrt(sum / float64(len(vs)-1))
}

// zScore is 0 when the baseline deviation is 0, so a flat feature never
// divides by zero.
func zScore(v, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (v - mean) / std
}
