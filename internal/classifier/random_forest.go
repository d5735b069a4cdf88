package classifier

// RandomForest averages the class distributions of its trees. The averaged
// vector still sums to 1 when every tree's leaves do.
type RandomForest struct {
    NClasses int
    Trees    []*DecisionTree
}

func (rf *RandomForest) Name() string { return "RandomForest" }

func (rf *RandomForest) NumClasses() int { return rf.NClasses }

func (rf *RandomForest) Predict(X [][]float64) []int {
    ps := rf.PredictProba(X)
    out := make([]int, len(ps))
    for i := range ps { out[i] = argmax(ps[i]) }
    return out
}

func (rf *RandomForest) PredictProba(X [][]float64) [][]float64 {
    n := len(X)
    out := make([][]float64, n)
    if len(rf.Trees) == 0 {
        for i := range out { out[i] = uniform(rf.NClasses) }
        return out
    }
    for i := range out { out[i] = make([]float64, rf.NClasses) }
    for _, dt := range rf.Trees {
        p := dt.PredictProba(X)
        for i := 0; i < n; i++ {
            for c := 0; c < rf.NClasses; c++ { out[i][c] += p[i][c] }
        }
    }
    m := float64(len(rf.Trees))
    for i := 0; i < n; i++ {
        for c := 0; c < rf.NClasses; c++ { out[i][c] /= m }
    }
    return out
}
