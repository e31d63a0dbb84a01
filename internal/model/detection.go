package model

// Feature names used as z-score map keys, metric labels and report fields.
const (
	FeatureNumTxs      = "num_txs"
	FeatureTotalAmount = "total_amount"
	FeatureMaxAmount   = "max_amount"
	FeatureTimeDelta   = "time_delta"
)

// Feature is a single named feature value.
type Feature struct {
	Name  string
	Value float64
}

// FeatureVector holds the per-block features consumed by both detectors.
// TimeDelta is measured in seconds and is 0 for the genesis block.
type FeatureVector struct {
	NumTxs      float64
	TotalAmount float64
	MaxAmount   float64
	TimeDelta   float64
}

// Fields returns the vector as name/value pairs in a fixed order, so verdict
// reasons and baselines iterate features deterministically.
func (fv FeatureVector) Fields() []Feature {
	return []Feature{
		{Name: FeatureNumTxs, Value: fv.NumTxs},
		{Name: FeatureTotalAmount, Value: fv.TotalAmount},
		{Name: FeatureMaxAmount, Value: fv.MaxAmount},
		{Name: FeatureTimeDelta, Value: fv.TimeDelta},
	}
}

// Detection is the statistical detector's verdict for one block.
type Detection struct {
	BlockIndex uint64
	Ready      bool
	IsAnomaly  bool
	ZScores    map[string]float64
	Reason     string
}

// Violation names a policy rule broken by a block.
type Violation struct {
	Rule   string
	Detail string
}

// RuleReport is the policy checker's verdict for one block. Violations are
// ordered by rule evaluation order and list every broken rule, not just the
// first.
type RuleReport struct {
	Alert      bool
	Violations []Violation
}

// BlockReport combines everything the pipeline learned about one appended block.
type BlockReport struct {
	Block     Block
	Features  FeatureVector
	Detection Detection
	Rules     RuleReport
	// SyntheticAnomaly is the injected ground-truth label when the block came
	// from the simulator. It never influences either detector.
	SyntheticAnomaly bool
}
