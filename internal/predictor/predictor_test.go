package predictor

import (
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "irisapi/internal/classifier"
)

type fakeModel struct {
    probs []float64
    class int
}

func (f *fakeModel) Predict(X [][]float64) []int            { return []int{f.class} }
func (f *fakeModel) PredictProba(X [][]float64) [][]float64 { return [][]float64{f.probs} }
func (f *fakeModel) NumClasses() int                        { return len(f.probs) }
func (f *fakeModel) Name() string                           { return "fake" }

func irisTree() *classifier.DecisionTree {
    return &classifier.DecisionTree{
        NClasses: 3,
        Root: &classifier.DTNode{
            Feature:   2,
            Threshold: 2.45,
            Left:      &classifier.DTNode{IsLeaf: true, ClassProbs: []float64{1, 0, 0}},
            Right: &classifier.DTNode{
                Feature:   3,
                Threshold: 1.75,
                Left:      &classifier.DTNode{IsLeaf: true, ClassProbs: []float64{0.02, 0.9, 0.08}},
                Right:     &classifier.DTNode{IsLeaf: true, ClassProbs: []float64{0, 0.06, 0.94}},
            },
        },
    }
}

func TestPredictSetosa(t *testing.T) {
    p := New(irisTree(), nil)

    res, err := p.Predict([]float64{5.1, 3.5, 1.4, 0.2})
    require.NoError(t, err)
    assert.Equal(t, 0, res.Prediction)
    assert.Equal(t, "setosa", res.ClassName)
    require.Len(t, res.Probabilities, 3)
    sum := 0.0
    for _, v := range res.Probabilities { sum += v }
    assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestPredictAllClasses(t *testing.T) {
    p := New(irisTree(), nil)

    cases := []struct {
        features []float64
        class    int
        name     string
    }{
        {[]float64{5.1, 3.5, 1.4, 0.2}, 0, "setosa"},
        {[]float64{5.7, 2.8, 4.1, 1.3}, 1, "versicolor"},
        {[]float64{6.3, 3.3, 6.0, 2.5}, 2, "virginica"},
    }
    for _, tc := range cases {
        res, err := p.Predict(tc.features)
        require.NoError(t, err)
        assert.Equal(t, tc.class, res.Prediction)
        assert.Equal(t, tc.name, res.ClassName)
    }
}

func TestPredictMissingFeatures(t *testing.T) {
    _, err := New(irisTree(), nil).Predict(nil)
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
    assert.EqualError(t, err, MsgMissingFeatures)
}

func TestPredictWrongLength(t *testing.T) {
    p := New(irisTree(), nil)

    for _, features := range [][]float64{
        {},
        {5.1, 3.5, 1.4},
        {5.1, 3.5, 1.4, 0.2, 9.9},
    } {
        _, err := p.Predict(features)
        require.Error(t, err)
        assert.Equal(t, KindValidation, KindOf(err))
        assert.EqualError(t, err, MsgWrongLength)
    }
}

func TestPredictBadModelOutput(t *testing.T) {
    _, err := New(&fakeModel{probs: []float64{0.5, 0.5}}, nil).Predict([]float64{1, 2, 3, 4})
    require.Error(t, err)
    assert.Equal(t, KindInference, KindOf(err))

    _, err = New(&fakeModel{probs: []float64{0.2, 0.3, 0.5}, class: 7}, nil).Predict([]float64{1, 2, 3, 4})
    require.Error(t, err)
    assert.Equal(t, KindInference, KindOf(err))
}

func TestKindOfForeignError(t *testing.T) {
    assert.Equal(t, KindInference, KindOf(errors.New("boom")))
}

func TestKindStrings(t *testing.T) {
    assert.Equal(t, "ValidationError", KindValidation.String())
    assert.Equal(t, "LoadError", KindLoad.String())
    assert.Equal(t, "InferenceError", KindInference.String())
}
