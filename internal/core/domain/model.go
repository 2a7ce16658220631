package domain

// Result holds the outcome of a similarity computation.
type Result struct {
	Name              string
	Score             float64
	Passed            bool
	OriginalLength    int
	AugmentedLength   int
	DistinctOriginal  int
	DistinctAugmented int
	Threshold         float64
	Details           map[string]interface{}
}
