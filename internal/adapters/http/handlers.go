package httpadapter

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/usecase"
)

// maxInputBytes bounds a posted puzzle input.
const maxInputBytes = 4 << 20

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/days", h.handleDays)
	api.POST("/days/:day/solve", h.handleSolve)
	api.GET("/days/:day/answer", h.handleAnswer)
	api.GET("/answers", h.handleAnswers)
}

// RequestLogger logs method, path, status, bytes, and duration.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"bytes":  c.Writer.Size(),
			"dur":    time.Since(start).Round(time.Millisecond),
		}).Info("http")
	}
}

type errorResp struct {
	Error string `json:"error"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var pe *domain.ParseError
	switch {
	case errors.As(err, &pe), errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrNoWinner):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownDay), errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func dayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day <= 0 {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid day: " + c.Param("day")})
		return 0, false
	}
	return day, true
}

// ---- Days ----

type daysResp struct {
	Days []domain.DayMeta `json:"days"`
}

func (h *Handler) handleDays(c *gin.Context) {
	c.JSON(http.StatusOK, daysResp{Days: h.UC.Days()})
}

// ---- Solve ----

type solveResp struct {
	Answer     domain.Answer `json:"answer"`
	Records    int           `json:"records,omitempty"`
	DurationMs int64         `json:"durationMs"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxInputBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResp{Error: "input exceeds " + strconv.FormatInt(tooBig.Limit, 10) + " bytes"})
			return
		}
		c.JSON(http.StatusBadRequest, errorResp{Error: "read body: " + err.Error()})
		return
	}
	a, st, err := h.UC.Solve(c.Request.Context(), day, string(body))
	if err != nil {
		c.JSON(statusFor(err), errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{Answer: a, Records: st.Records, DurationMs: st.Duration.Milliseconds()})
}

// ---- Answer / Answers ----

func (h *Handler) handleAnswer(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	a, err := h.UC.Answer(c.Request.Context(), day)
	if err != nil {
		c.JSON(statusFor(err), errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

type answersResp struct {
	Answers []domain.Answer `json:"answers"`
}

func (h *Handler) handleAnswers(c *gin.Context) {
	as, err := h.UC.Answers(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), errorResp{Error: err.Error()})
		return
	}
	if as == nil {
		as = []domain.Answer{}
	}
	c.JSON(http.StatusOK, answersResp{Answers: as})
}
