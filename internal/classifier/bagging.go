package classifier

// Bagging is a bootstrap ensemble over full-feature trees. Inference is the
// same averaging as RandomForest; the artifact kind differs.
type Bagging struct {
    NClasses int
    Trees    []*DecisionTree
}

func (bg *Bagging) Name() string { return "Bagging" }

func (bg *Bagging) NumClasses() int { return bg.NClasses }

func (bg *Bagging) Predict(X [][]float64) []int {
    ps := bg.PredictProba(X)
    out := make([]int, len(ps))
    for i := range ps { out[i] = argmax(ps[i]) }
    return out
}

func (bg *Bagging) PredictProba(X [][]float64) [][]float64 {
    n := len(X)
    out := make([][]float64, n)
    if len(bg.Trees) == 0 {
        for i := range out { out[i] = uniform(bg.NClasses) }
        return out
    }
    for i := range out { out[i] = make([]float64, bg.NClasses) }
    for _, dt := range bg.Trees {
        p := dt.PredictProba(X)
        for i := 0; i < n; i++ {
            for c := 0; c < bg.NClasses; c++ { out[i][c] += p[i][c] }
        }
    }
    m := float64(len(bg.Trees))
    for i := 0; i < n; i++ {
        for c := 0; c < bg.NClasses; c++ { out[i][c] /= m }
    }
    return out
}
