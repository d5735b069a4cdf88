package predictor

import (
    "fmt"

    "go.uber.org/zap"

    "irisapi/internal/classifier"
)

// NumFeatures is the fixed length of a feature vector: sepal length,
// sepal width, petal length, petal width.
const NumFeatures = 4

// ClassNames maps a class index to its label.
var ClassNames = []string{"setosa", "versicolor", "virginica"}

const (
    MsgMissingFeatures = "Missing features in request body"
    MsgWrongLength     = "Features must contain exactly 4 values"
)

type Result struct {
    Prediction    int       `json:"prediction"`
    ClassName     string    `json:"class_name"`
    Probabilities []float64 `json:"probabilities"`
}

// Predictor runs inference against a single loaded model. The model is
// immutable, so one Predictor is shared by all requests.
type Predictor struct {
    model  classifier.Model
    logger *zap.Logger
}

func New(model classifier.Model, logger *zap.Logger) *Predictor {
    if logger == nil { logger = zap.NewNop() }
    return &Predictor{model: model, logger: logger}
}

// Predict validates the feature vector, runs the classifier on the single
// sample and maps the winning class index to its name.
func (p *Predictor) Predict(features []float64) (*Result, error) {
    if features == nil {
        return nil, NewValidation(MsgMissingFeatures)
    }
    if len(features) != NumFeatures {
        return nil, NewValidation(MsgWrongLength)
    }

    probs := p.model.PredictProba([][]float64{features})[0]
    if len(probs) != len(ClassNames) {
        return nil, NewInference(
            fmt.Sprintf("model returned %d probabilities, want %d", len(probs), len(ClassNames)), nil)
    }
    pred := p.model.Predict([][]float64{features})[0]
    if pred < 0 || pred >= len(ClassNames) {
        return nil, NewInference(fmt.Sprintf("model returned class %d out of range", pred), nil)
    }

    p.logger.Debug("prediction",
        zap.String("model", p.model.Name()),
        zap.Int("class", pred),
        zap.Float64s("probabilities", probs),
    )
    return &Result{
        Prediction:    pred,
        ClassName:     ClassNames[pred],
        Probabilities: probs,
    }, nil
}
