package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/sample"
	"svw.info/advent/internal/solver"
	"svw.info/advent/internal/usecase"
)

func newRouter(t *testing.T) (*gin.Engine, *usecase.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := test.NewNullLogger()
	uc := usecase.NewService(storage.NewFS(t.TempDir()), log, solver.All()...)
	r := gin.New()
	r.Use(RequestLogger(log))
	New(uc).Register(r)
	return r, uc
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDays(t *testing.T) {
	r, _ := newRouter(t)
	w := do(r, http.MethodGet, "/api/days", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp daysResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Days, 6)
	assert.Equal(t, "Giant Squid", resp.Days[3].Title)
}

func TestSolveSample(t *testing.T) {
	r, _ := newRouter(t)
	smp, err := sample.For(4)
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/api/days/4/solve", smp.Input)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NoError(t, smp.Check(resp.Answer))
	assert.Equal(t, 3, resp.Records)
}

func TestSolveErrors(t *testing.T) {
	r, _ := newRouter(t)
	cases := []struct {
		name string
		path string
		body string
		code int
	}{
		{"bad day", "/api/days/x/solve", "", http.StatusBadRequest},
		{"unknown day", "/api/days/20/solve", "1", http.StatusNotFound},
		{"parse error", "/api/days/1/solve", "1\nfoo\n", http.StatusBadRequest},
		{"empty", "/api/days/2/solve", "", http.StatusBadRequest},
		{"oversized body", "/api/days/1/solve", strings.Repeat("1\n", maxInputBytes/2) + "2\n", http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.code, w.Code)
			var resp errorResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestSolveAtLimit(t *testing.T) {
	r, _ := newRouter(t)
	body := strings.Repeat("1\n", maxInputBytes/2-1) + "2\n"
	require.Len(t, body, maxInputBytes)

	w := do(r, http.MethodPost, "/api/days/1/solve", body)
	require.Equal(t, http.StatusOK, w.Code)
	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Answer.Part1)
	assert.Equal(t, maxInputBytes/2, resp.Records)
}

func TestAnswers(t *testing.T) {
	r, uc := newRouter(t)

	w := do(r, http.MethodGet, "/api/days/3/answer", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/answers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answers":[]}`, w.Body.String())

	require.NoError(t, uc.Storage.Save(context.Background(), &domain.Answer{Day: 3, Part1: 198, Part2: 230}))

	w = do(r, http.MethodGet, "/api/days/3/answer", "")
	require.Equal(t, http.StatusOK, w.Code)
	var a domain.Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.Equal(t, int64(230), a.Part2)

	w = do(r, http.MethodGet, "/api/answers", "")
	var resp answersResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Answers, 1)
}
