package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Vidtube/config"
	ctxutil "Vidtube/pkg/context"
	"Vidtube/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var secret = []byte("mw-secret")

type checker map[int64]bool

func (c checker) Exists(_ context.Context, uid int64) (bool, error) {
	if uid < 0 {
		return false, errors.New("db down")
	}
	return c[uid], nil
}

func engine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.Any("/x", func(c *gin.Context) {
		c.String(http.StatusOK, "%v", c.GetInt64(ctxutil.CtxUserID))
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, uid int64, typ string) string {
	t.Helper()
	s, err := jwt.GenerateToken(secret, uid, typ, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAuth(t *testing.T) {
	r := engine(Auth(secret, checker{7: true}))

	cases := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"missing", func(*http.Request) {}, http.StatusUnauthorized},
		{"header", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token(t, 7, jwt.TypeAccess))
		}, http.StatusOK},
		{"lowercase scheme", func(req *http.Request) {
			req.Header.Set("Authorization", "bearer "+token(t, 7, jwt.TypeAccess))
		}, http.StatusOK},
		{"cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token(t, 7, jwt.TypeAccess)})
		}, http.StatusOK},
		{"refresh token rejected", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token(t, 7, jwt.TypeRefresh))
		}, http.StatusUnauthorized},
		{"deleted user", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token(t, 8, jwt.TypeAccess))
		}, http.StatusUnauthorized},
		{"lookup failure", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token(t, -1, jwt.TypeAccess))
		}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			tc.setup(req)
			w := serve(r, req)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.status == http.StatusOK && w.Body.String() != "7" {
				t.Fatalf("uid = %q", w.Body.String())
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(&config.RateLimit{RequestsPerMinute: 1, Burst: 2})
	r := engine(l.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		codes = append(codes, serve(r, req).Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	// buckets are per client
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	if w := serve(r, req); w.Code != http.StatusOK {
		t.Fatalf("second client: %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	r := engine(CORS([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := serve(r, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight: %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" ||
		w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("headers = %v", w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("foreign origin: %d %v", w.Code, w.Header())
	}

	r = engine(CORS([]string{"*"}))
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://any.example.com")
	if got := serve(r, req).Header().Get("Access-Control-Allow-Origin"); got != "https://any.example.com" {
		t.Fatalf("wildcard echo = %q", got)
	}
}

func TestRequestID(t *testing.T) {
	r := engine(RequestID())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	if len(w.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("generated id = %q", w.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	if got := serve(r, req).Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("propagated id = %q", got)
	}
}
