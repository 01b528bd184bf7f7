// Package http exposes the frequency-response solver over a JSON API.
package http

import (
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-driver/internal/config"
	"github.com/cwbudde/algo-driver/internal/report"
	"github.com/cwbudde/algo-driver/transducer"
)

// MaxPoints bounds the sweep size accepted from clients.
const MaxPoints = 100000

// Handler handles HTTP requests for frequency responses.
type Handler struct {
	log     logrus.FieldLogger
	workers int
}

// NewHandler creates a new HTTP handler. workers is passed to the solver;
// zero or less uses one worker per CPU.
func NewHandler(log logrus.FieldLogger, workers int) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Handler{
		log:     log,
		workers: workers,
	}
}

// ResponseRequest is the body of POST /v1/response. Omitted parameter
// fields keep their defaults; an omitted sweep uses the default grid for
// the requested center frequency.
type ResponseRequest struct {
	Parameters *transducer.Parameters `json:"parameters"`
	Sweep      *config.SweepConfig    `json:"sweep"`
	Impedance  bool                   `json:"impedance"`
	Smooth     int                    `json:"smooth"`
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetDefaultParameters handles GET /v1/parameters/default.
func (h *Handler) GetDefaultParameters(c *gin.Context) {
	c.JSON(http.StatusOK, transducer.DefaultParameters())
}

// GetResponse handles GET /v1/response for the default parameters.
func (h *Handler) GetResponse(c *gin.Context) {
	var sc config.SweepConfig

	if s := c.Query("start"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid start: %v", err)})
			return
		}
		sc.Start = v
	}

	if s := c.Query("end"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid end: %v", err)})
			return
		}
		sc.End = v
	}

	if s := c.Query("points"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid points: %v", err)})
			return
		}
		sc.Points = v
	}

	sc.Spacing = c.Query("spacing")

	h.respond(c, transducer.DefaultParameters(), sc, c.Query("impedance") == "true", 0)
}

// PostResponse handles POST /v1/response.
func (h *Handler) PostResponse(c *gin.Context) {
	defaults := transducer.DefaultParameters()
	req := ResponseRequest{Parameters: &defaults}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	p := defaults
	if req.Parameters != nil {
		p = *req.Parameters
	}

	var sc config.SweepConfig
	if req.Sweep != nil {
		sc = *req.Sweep
	}

	h.respond(c, p, sc, req.Impedance, req.Smooth)
}

func (h *Handler) respond(c *gin.Context, p transducer.Parameters, sc config.SweepConfig, impedance bool, smooth int) {
	if err := p.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := sc.Resolve(p.CenterFreq)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if grid.Points > MaxPoints {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("too many points: %d > %d", grid.Points, MaxPoints)})
		return
	}

	freqs, err := grid.Frequencies()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := []transducer.Option{transducer.WithWorkers(h.workers)}
	if impedance {
		opts = append(opts, transducer.WithImpedance())
	}

	start := time.Now()
	res, err := transducer.SolveContext(c.Request.Context(), p, freqs, opts...)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := report.Build(res, report.Options{Smooth: smooth, Summary: true})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.WithFields(logrus.Fields{
		"points":    res.Len(),
		"spacing":   grid.Spacing.String(),
		"nonFinite": res.NonFinite,
		"elapsed":   time.Since(start),
	}).Debug("solved sweep")

	c.JSON(http.StatusOK, out)
}
