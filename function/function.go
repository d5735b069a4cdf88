// Package function is the serverless deployment of the iris classifier: a
// single HTTP Cloud Function mirroring the /predict contract of the gin app.
package function

import (
    "fmt"
    "net/http"
    "os"

    "github.com/GoogleCloudPlatform/functions-framework-go/functions"
    json "github.com/goccy/go-json"

    "irisapi/internal/classifier"
    "irisapi/internal/predictor"
)

func init() {
    functions.HTTP("predict", Predict)
}

// loader is bound at init and caches the decoded model across invocations.
// Serverless deployments bundle the artifact next to the source.
var loader = classifier.NewLoader(envOr("MODEL_PATH", "model.gob"), os.Getenv("MODEL_ALGO"))

func envOr(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}

type predictReq struct {
    Features []float64 `json:"features"`
}

// Predict handles one prediction request. Every response carries the CORS
// origin header; OPTIONS preflights get 204 and no body.
func Predict(w http.ResponseWriter, r *http.Request) {
    if r.Method == http.MethodOptions {
        h := w.Header()
        h.Set("Access-Control-Allow-Origin", "*")
        h.Set("Access-Control-Allow-Methods", "POST")
        h.Set("Access-Control-Allow-Headers", "Content-Type")
        h.Set("Access-Control-Max-Age", "3600")
        w.WriteHeader(http.StatusNoContent)
        return
    }
    w.Header().Set("Access-Control-Allow-Origin", "*")

    defer func() {
        if rec := recover(); rec != nil {
            writeJSON(w, http.StatusInternalServerError, map[string]any{
                "error": fmt.Sprint(rec),
                "type":  predictor.KindInference.String(),
            })
        }
    }()

    var req predictReq
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Features == nil {
        writeJSON(w, http.StatusBadRequest, map[string]any{
            "error":           predictor.MsgMissingFeatures,
            "expected_format": map[string]any{"features": []float64{5.1, 3.5, 1.4, 0.2}},
        })
        return
    }
    if len(req.Features) != predictor.NumFeatures {
        writeJSON(w, http.StatusBadRequest, map[string]any{
            "error":    predictor.MsgWrongLength,
            "received": len(req.Features),
        })
        return
    }

    model, err := loader.Load()
    if err != nil {
        writeJSON(w, http.StatusInternalServerError, map[string]any{
            "error": err.Error(),
            "type":  predictor.KindLoad.String(),
        })
        return
    }

    res, err := predictor.New(model, nil).Predict(req.Features)
    if err != nil {
        status := http.StatusInternalServerError
        if predictor.KindOf(err) == predictor.KindValidation {
            status = http.StatusBadRequest
        }
        writeJSON(w, status, map[string]any{
            "error": err.Error(),
            "type":  predictor.KindOf(err).String(),
        })
        return
    }
    writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(body)
}
