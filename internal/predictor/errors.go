package predictor

import "errors"

// Kind classifies a prediction failure so HTTP adapters can map it to a
// status code without inspecting messages.
type Kind int

const (
    KindInference Kind = iota
    KindValidation
    KindLoad
)

func (k Kind) String() string {
    switch k {
    case KindValidation:
        return "ValidationError"
    case KindLoad:
        return "LoadError"
    default:
        return "InferenceError"
    }
}

type Error struct {
    Kind    Kind
    Message string
    Err     error
}

func (e *Error) Error() string {
    if e.Err != nil {
        return e.Message + ": " + e.Err.Error()
    }
    return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidation(msg string) *Error {
    return &Error{Kind: KindValidation, Message: msg}
}

func NewLoad(msg string, err error) *Error {
    return &Error{Kind: KindLoad, Message: msg, Err: err}
}

func NewInference(msg string, err error) *Error {
    return &Error{Kind: KindInference, Message: msg, Err: err}
}

// KindOf reports the Kind of err, defaulting to KindInference for errors
// that did not come from this package.
func KindOf(err error) Kind {
    var pe *Error
    if errors.As(err, &pe) {
        return pe.Kind
    }
    return KindInference
}
