package classifier

import (
    "encoding/gob"
    "fmt"
    "os"
    "sync"
)

const (
    AlgoDecisionTree = "dt"
    AlgoRandomForest = "rf"
    AlgoBagging      = "bagging"
)

// Loader decodes a gob model artifact from a fixed path. A successful decode
// is cached for the life of the process; a failed one is retried on the next
// Load call.
type Loader struct {
    path string
    algo string

    mu    sync.Mutex
    model Model
}

func NewLoader(path, algo string) *Loader {
    if algo == "" { algo = AlgoDecisionTree }
    return &Loader{path: path, algo: algo}
}

func (l *Loader) Load() (Model, error) {
    l.mu.Lock()
    defer l.mu.Unlock()
    if l.model != nil {
        return l.model, nil
    }
    m, err := decodeArtifact(l.path, l.algo)
    if err != nil {
        return nil, err
    }
    l.model = m
    return m, nil
}

func decodeArtifact(path, algo string) (Model, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, fmt.Errorf("open model artifact %s: %w", path, err)
    }
    defer f.Close()
    dec := gob.NewDecoder(f)

    switch algo {
    case AlgoRandomForest:
        var rf RandomForest
        if err := dec.Decode(&rf); err != nil {
            return nil, fmt.Errorf("decode %s artifact %s: %w", algo, path, err)
        }
        if len(rf.Trees) == 0 {
            return nil, fmt.Errorf("model artifact %s: forest has no trees", path)
        }
        return &rf, nil
    case AlgoBagging:
        var bg Bagging
        if err := dec.Decode(&bg); err != nil {
            return nil, fmt.Errorf("decode %s artifact %s: %w", algo, path, err)
        }
        if len(bg.Trees) == 0 {
            return nil, fmt.Errorf("model artifact %s: ensemble has no trees", path)
        }
        return &bg, nil
    case AlgoDecisionTree:
        var dt DecisionTree
        if err := dec.Decode(&dt); err != nil {
            return nil, fmt.Errorf("decode %s artifact %s: %w", algo, path, err)
        }
        if dt.Root == nil {
            return nil, fmt.Errorf("model artifact %s: tree has no root", path)
        }
        return &dt, nil
    default:
        return nil, fmt.Errorf("unknown model algo %q", algo)
    }
}
