package service

import (
	"context"
	"testing"

	"Vidtube/config"
	"Vidtube/dao"
	"Vidtube/dao/cache"
	"Vidtube/internal/testsupport"
	"Vidtube/pkg/idcodec"
	"Vidtube/pkg/response"
	"Vidtube/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type fixedProber float64

func (p fixedProber) Duration(context.Context, string) (float64, error) { return float64(p), nil }

type harness struct {
	db    *gorm.DB
	store *testsupport.MediaStore
	redis *miniredis.Miniredis

	users     *UserService
	videos    *VideoService
	comments  *CommentService
	likes     *LikeService
	tweets    *TweetService
	playlists *PlaylistService
	subs      *SubscriptionService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testsupport.NewDB(t)
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	store := testsupport.NewMediaStore()
	mediaSvc := &MediaService{
		Store:  store,
		Conf:   &config.Upload{MaxImageBytes: 1 << 20, MaxVideoBytes: 1 << 20},
		Prober: fixedProber(12.5),
	}

	usersRepo := dao.NewUsers(db)
	videoRepo := dao.NewVideoDAO(db)
	commentRepo := dao.NewComment(db)
	tweetRepo := dao.NewTweetDAO(db)
	subRepo := dao.NewSubscriptionDAO(db)

	return &harness{
		db:    db,
		store: store,
		redis: mr,
		users: &UserService{
			UsersRepo:     usersRepo,
			VideoRepo:     videoRepo,
			Subscriptions: subRepo,
			Sessions:      cache.NewSessionStorage(rds),
			Media:         mediaSvc,
			Jwt:           &config.Jwt{Secret: "test-secret", AccessExpire: 3600, RefreshExpire: 7200},
		},
		videos:   &VideoService{VideoRepo: videoRepo, UsersRepo: usersRepo, Media: mediaSvc},
		comments: &CommentService{CommentRepo: commentRepo, VideoRepo: videoRepo, UsersRepo: usersRepo},
		likes: &LikeService{
			LikeDAO:     dao.NewLikeDAO(db),
			VideoRepo:   videoRepo,
			CommentRepo: commentRepo,
			TweetRepo:   tweetRepo,
			UsersRepo:   usersRepo,
		},
		tweets:    &TweetService{TweetRepo: tweetRepo, UsersRepo: usersRepo},
		playlists: &PlaylistService{PlaylistRepo: dao.NewPlaylistDAO(db), VideoRepo: videoRepo, UsersRepo: usersRepo},
		subs:      &SubscriptionService{SubscriptionRepo: subRepo, UsersRepo: usersRepo},
	}
}

// register creates an account through the service and returns its id.
func (h *harness) register(t *testing.T, username string) int64 {
	t.Helper()
	avatar := testsupport.TempFile(t, "avatar.png", testsupport.PNG(t))
	user, err := h.users.Register(context.Background(), &types.RegisterRequest{
		FullName: "Full " + username,
		Email:    username + "@example.com",
		Username: username,
		Password: "secret-" + username,
	}, avatar, "")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	id, err := idcodec.Decode(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func (h *harness) publish(t *testing.T, ownerID int64, title string) int64 {
	t.Helper()
	v, err := h.videos.Publish(context.Background(), ownerID, &PublishVideoInput{
		Title:         title,
		Description:   "about " + title,
		VideoPath:     testsupport.TempFile(t, "clip.mp4", testsupport.MP4),
		ThumbnailPath: testsupport.TempFile(t, "thumb.png", testsupport.PNG(t)),
	})
	if err != nil {
		t.Fatalf("publish %s: %v", title, err)
	}
	id, _ := idcodec.Decode(v.ID)
	return id
}

func (h *harness) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := h.db.Model(model).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("err = nil, want status %d", code)
	}
	if got := response.CodeOf(err); got != code {
		t.Fatalf("status = %d (%v), want %d", got, err, code)
	}
}

