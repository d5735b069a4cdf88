package classifier

// Model is a trained classifier loaded from an artifact. Implementations are
// immutable after decoding and safe for concurrent use.
type Model interface {
    Predict(X [][]float64) []int
    PredictProba(X [][]float64) [][]float64
    NumClasses() int
    Name() string
}

func argmax(p []float64) int {
    best := 0
    for i := 1; i < len(p); i++ {
        if p[i] > p[best] { best = i }
    }
    return best
}

func uniform(k int) []float64 {
    p := make([]float64, k)
    for i := range p { p[i] = 1.0 / float64(k) }
    return p
}
