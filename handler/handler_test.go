package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"Vidtube/config"
	"Vidtube/dao"
	"Vidtube/dao/cache"
	"Vidtube/handler"
	"Vidtube/internal/testsupport"
	"Vidtube/middleware"
	"Vidtube/pkg/server"
	"Vidtube/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type noProbe struct{}

func (noProbe) Duration(context.Context, string) (float64, error) { return 3, nil }

type envelope struct {
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type api struct {
	t      *testing.T
	engine *gin.Engine
	store  *testsupport.MediaStore
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Parse([]byte(fmt.Sprintf(`
jwt:
  secret: test-secret
upload:
  temp_dir: %s
  max_image_bytes: 1048576
  max_video_bytes: 1048576
rate_limit:
  requests_per_minute: 6000
  burst: 1000
`, t.TempDir())))
	if err != nil {
		t.Fatal(err)
	}

	db := testsupport.NewDB(t)
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	store := testsupport.NewMediaStore()

	users := dao.NewUsers(db)
	videos := dao.NewVideoDAO(db)
	comments := dao.NewComment(db)
	tweets := dao.NewTweetDAO(db)
	subs := dao.NewSubscriptionDAO(db)
	mediaSvc := &service.MediaService{Store: store, Conf: cfg.Upload, Prober: noProbe{}}
	userSvc := &service.UserService{
		UsersRepo:     users,
		VideoRepo:     videos,
		Subscriptions: subs,
		Sessions:      cache.NewSessionStorage(rds),
		Media:         mediaSvc,
		Jwt:           cfg.Jwt,
	}

	handlers := &server.Handlers{
		Health: &handler.Health{Db: db},
		User:   &handler.User{Config: cfg, UserService: userSvc, Limiter: middleware.NewRateLimiter(cfg.RateLimit)},
		Video: &handler.Video{Config: cfg, UserService: userSvc, VideoService: &service.VideoService{
			VideoRepo: videos, UsersRepo: users, Media: mediaSvc,
		}},
		Comment: &handler.Comment{Config: cfg, UserService: userSvc, CommentService: &service.CommentService{
			CommentRepo: comments, VideoRepo: videos, UsersRepo: users,
		}},
		Like: &handler.Like{Config: cfg, UserService: userSvc, LikeService: &service.LikeService{
			LikeDAO: dao.NewLikeDAO(db), VideoRepo: videos, CommentRepo: comments, TweetRepo: tweets, UsersRepo: users,
		}},
		Tweet: &handler.Tweet{Config: cfg, UserService: userSvc, TweetService: &service.TweetService{
			TweetRepo: tweets, UsersRepo: users,
		}},
		Playlist: &handler.Playlist{Config: cfg, UserService: userSvc, PlaylistService: &service.PlaylistService{
			PlaylistRepo: dao.NewPlaylistDAO(db), VideoRepo: videos, UsersRepo: users,
		}},
		Subscription: &handler.Subscription{Config: cfg, UserService: userSvc, SubscriptionService: &service.SubscriptionService{
			SubscriptionRepo: subs, UsersRepo: users,
		}},
	}
	return &api{t: t, engine: server.NewGinEngine(cfg, handlers), store: store}
}

func (a *api) do(req *http.Request, token string) (int, envelope) {
	a.t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		a.t.Fatalf("%s %s: decode %q: %v", req.Method, req.URL, w.Body.String(), err)
	}
	if env.Status != w.Code {
		a.t.Fatalf("%s %s: envelope status %d, http %d", req.Method, req.URL, env.Status, w.Code)
	}
	return w.Code, env
}

func (a *api) json(method, path, token string, body any) (int, envelope) {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, token)
}

func (a *api) multipart(method, path, token string, fields map[string]string, files map[string][]byte) (int, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for field, data := range files {
		fw, err := mw.CreateFormFile(field, field+".bin")
		if err != nil {
			a.t.Fatal(err)
		}
		_, _ = fw.Write(data)
	}
	_ = mw.Close()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.do(req, token)
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return v
}

// signup registers and logs in, returning the access token.
func (a *api) signup(name string) string {
	a.t.Helper()
	code, env := a.multipart(http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"fullName": "Full " + name,
		"email":    name + "@example.com",
		"username": name,
		"password": "pw-" + name,
	}, map[string][]byte{"avatar": testsupport.PNG(a.t)})
	if code != http.StatusCreated {
		a.t.Fatalf("register %s: %d %s", name, code, env.Message)
	}

	code, env = a.json(http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"username": name,
		"password": "pw-" + name,
	})
	if code != http.StatusOK {
		a.t.Fatalf("login %s: %d %s", name, code, env.Message)
	}
	return decode[struct {
		AccessToken string `json:"accessToken"`
	}](a.t, env).AccessToken
}

func (a *api) publish(token, title string) string {
	a.t.Helper()
	code, env := a.multipart(http.MethodPost, "/api/v1/videos", token,
		map[string]string{"title": title, "description": "about " + title},
		map[string][]byte{"videoFile": testsupport.MP4, "thumbnail": testsupport.PNG(a.t)})
	if code != http.StatusCreated {
		a.t.Fatalf("publish: %d %s", code, env.Message)
	}
	return decode[struct {
		ID string `json:"id"`
	}](a.t, env).ID
}
