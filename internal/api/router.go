package api

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "irisapi/internal/predictor"
)

// Router wires the iris endpoints onto a gin engine. The predictor is
// injected once at construction; handlers keep no package state.
type Router struct {
    predictor *predictor.Predictor
    logger    *zap.Logger
}

func NewRouter(p *predictor.Predictor, logger *zap.Logger) *Router {
    if logger == nil { logger = zap.NewNop() }
    return &Router{predictor: p, logger: logger}
}

func (rt *Router) Engine() *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery())
    r.GET("/", rt.handleRoot)
    r.GET("/health", rt.handleHealth)
    r.POST("/predict", rt.handlePredict)
    return r
}

type predictReq struct {
    Features []float64 `json:"features"`
}

func (rt *Router) handleRoot(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"message": "Iris Classification API is running"})
}

func (rt *Router) handleHealth(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (rt *Router) handlePredict(c *gin.Context) {
    var req predictReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
        return
    }
    if req.Features == nil {
        c.JSON(http.StatusBadRequest, gin.H{
            "error":           predictor.MsgMissingFeatures,
            "expected_format": gin.H{"features": []float64{5.1, 3.5, 1.4, 0.2}},
        })
        return
    }
    if len(req.Features) != predictor.NumFeatures {
        c.JSON(http.StatusBadRequest, gin.H{
            "error":    predictor.MsgWrongLength,
            "received": len(req.Features),
        })
        return
    }

    res, err := rt.predictor.Predict(req.Features)
    if err != nil {
        rt.fail(c, err)
        return
    }
    c.JSON(http.StatusOK, res)
}

// fail maps an error kind to its HTTP status and echoes message and type,
// mirroring the serverless variant's catch-all shape.
func (rt *Router) fail(c *gin.Context, err error) {
    kind := predictor.KindOf(err)
    status := http.StatusInternalServerError
    if kind == predictor.KindValidation {
        status = http.StatusBadRequest
    }
    if status >= http.StatusInternalServerError {
        rt.logger.Error("predict failed", zap.String("type", kind.String()), zap.Error(err))
    }
    c.JSON(status, gin.H{"error": err.Error(), "type": kind.String()})
}
