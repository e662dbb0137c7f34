package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

func TestWrapMapsErrorsToEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"biz", response.NotFound("video not found"), http.StatusNotFound, "video not found"},
		{"conflict", response.Conflict("taken"), http.StatusConflict, "taken"},
		{"internal", errors.New("dial tcp: refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", Wrap(func(c *gin.Context) error { return tc.err }))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			if w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantCode)
			}
			var body response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Status != tc.wantCode || body.Message != tc.wantMsg {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, err := GetUserID(c); response.CodeOf(err) != http.StatusUnauthorized {
		t.Fatalf("missing user: err = %v", err)
	}

	c.Set(CtxUserID, int64(42))
	uid, err := GetUserID(c)
	if err != nil || uid != 42 {
		t.Fatalf("uid = %d, err = %v", uid, err)
	}
}
