package classifier

// DTNode is a single node of a decision tree. Leaves carry a normalized
// class distribution; internal nodes split on Feature <= Threshold.
// Fields are exported for gob.
type DTNode struct {
    Feature    int
    Threshold  float64
    Left       *DTNode
    Right      *DTNode
    IsLeaf     bool
    ClassProbs []float64
}

type DecisionTree struct {
    NClasses int
    Root     *DTNode
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) NumClasses() int { return dt.NClasses }

func (dt *DecisionTree) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    for i := range X {
        out[i] = argmax(dt.predictProbaOne(X[i]))
    }
    return out
}

func (dt *DecisionTree) PredictProba(X [][]float64) [][]float64 {
    out := make([][]float64, len(X))
    for i := range X { out[i] = dt.predictProbaOne(X[i]) }
    return out
}

func (dt *DecisionTree) predictProbaOne(x []float64) []float64 {
    n := dt.Root
    if n == nil { return uniform(dt.NClasses) }
    for !n.IsLeaf {
        if x[n.Feature] <= n.Threshold { n = n.Left } else { n = n.Right }
        if n == nil { return uniform(dt.NClasses) }
    }
    return n.ClassProbs
}
