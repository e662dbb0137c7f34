package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Vidtube/internal/testsupport"
)

type videoBody struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
	Owner *struct {
		Username string `json:"username"`
		FullName string `json:"fullName"`
		Avatar   string `json:"avatar"`
	} `json:"owner"`
}

type pageBody[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"totalItems"`
	Page       int   `json:"page"`
	TotalPages int64 `json:"totalPages"`
}

// A uploads a video, B comments on it, A removes the comment as the video
// owner, and B is refused when trying to delete A's video.
func TestOwnershipFlow(t *testing.T) {
	a := newAPI(t)
	alice := a.signup("alice")
	bob := a.signup("bob")
	videoID := a.publish(alice, "holiday")

	code, env := a.json(http.MethodPost, "/api/v1/comments/"+videoID, bob, map[string]string{"content": "great video"})
	if code != http.StatusCreated {
		t.Fatalf("comment: %d %s", code, env.Message)
	}
	commentID := decode[struct {
		ID string `json:"id"`
	}](t, env).ID

	code, env = a.json(http.MethodGet, "/api/v1/comments/"+videoID, alice, nil)
	page := decode[pageBody[struct {
		Content string `json:"content"`
		Owner   struct {
			Username string `json:"username"`
		} `json:"owner"`
	}]](t, env)
	if code != http.StatusOK || page.TotalItems != 1 || page.Items[0].Owner.Username != "bob" {
		t.Fatalf("comments: %d %+v", code, page)
	}

	if code, env = a.json(http.MethodDelete, "/api/v1/comments/c/"+commentID, alice, nil); code != http.StatusOK {
		t.Fatalf("owner deletes comment: %d %s", code, env.Message)
	}

	_, destroysBefore := a.store.Calls()
	if code, _ = a.json(http.MethodDelete, "/api/v1/videos/"+videoID, bob, nil); code != http.StatusForbidden {
		t.Fatalf("stranger delete: %d", code)
	}
	if _, destroys := a.store.Calls(); destroys != destroysBefore {
		t.Fatal("media destroyed on forbidden delete")
	}

	if code, _ = a.json(http.MethodDelete, "/api/v1/videos/"+videoID, alice, nil); code != http.StatusOK {
		t.Fatalf("owner delete: %d", code)
	}
	if code, _ = a.json(http.MethodGet, "/api/v1/videos/"+videoID, alice, nil); code != http.StatusNotFound {
		t.Fatalf("get deleted video: %d", code)
	}
}

func TestRegisterConflictOverHTTP(t *testing.T) {
	a := newAPI(t)
	a.signup("carol")

	code, env := a.multipart(http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"fullName": "Carol Again",
		"email":    "carol@example.com",
		"username": "carol2",
		"password": "pw",
	}, map[string][]byte{"avatar": testsupport.PNG(t)})
	if code != http.StatusConflict || env.Message == "" {
		t.Fatalf("duplicate register: %d %+v", code, env)
	}

	code, _ = a.multipart(http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"fullName": "No Avatar",
		"email":    "na@example.com",
		"username": "na",
		"password": "pw",
	}, nil)
	if code != http.StatusBadRequest {
		t.Fatalf("register without avatar: %d", code)
	}
}

func TestAuthGate(t *testing.T) {
	a := newAPI(t)
	token := a.signup("dave")

	if code, _ := a.json(http.MethodGet, "/api/v1/users/current-user", "", nil); code != http.StatusUnauthorized {
		t.Fatalf("no token: %d", code)
	}
	if code, _ := a.json(http.MethodGet, "/api/v1/users/current-user", "garbage", nil); code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d", code)
	}

	code, env := a.json(http.MethodGet, "/api/v1/users/current-user", token, nil)
	if code != http.StatusOK {
		t.Fatalf("current user: %d", code)
	}
	me := decode[map[string]any](t, env)
	if me["username"] != "dave" {
		t.Fatalf("me = %v", me)
	}
	if _, leaked := me["password"]; leaked {
		t.Fatal("password serialized")
	}

	// the cookie works as well as the header
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	if code, _ := a.do(req, ""); code != http.StatusOK {
		t.Fatalf("cookie auth: %d", code)
	}

	if code, _ := a.json(http.MethodPost, "/api/v1/users/logout", token, nil); code != http.StatusOK {
		t.Fatalf("logout: %d", code)
	}
}

func TestViewCountedOncePerUser(t *testing.T) {
	a := newAPI(t)
	owner := a.signup("owner")
	viewer := a.signup("viewer")
	id := a.publish(owner, "clip")

	for i := 0; i < 3; i++ {
		code, env := a.json(http.MethodGet, "/api/v1/videos/"+id, viewer, nil)
		v := decode[videoBody](t, env)
		if code != http.StatusOK || v.Views != 1 {
			t.Fatalf("fetch %d: %d views=%d", i, code, v.Views)
		}
		if v.Owner == nil || v.Owner.Username != "owner" || v.Owner.FullName != "Full owner" {
			t.Fatalf("owner = %+v", v.Owner)
		}
	}
}

func TestLikeToggleOverHTTP(t *testing.T) {
	a := newAPI(t)
	owner := a.signup("owner")
	fan := a.signup("fan")
	id := a.publish(owner, "clip")

	for i, want := range []bool{true, false} {
		code, env := a.json(http.MethodPost, "/api/v1/likes/toggle/v/"+id, fan, nil)
		got := decode[struct {
			IsLiked bool `json:"isLiked"`
		}](t, env)
		if code != http.StatusOK || got.IsLiked != want {
			t.Fatalf("toggle %d: %d %+v", i, code, got)
		}
	}

	if code, _ := a.json(http.MethodPost, "/api/v1/likes/video/"+id, fan, nil); code != http.StatusOK {
		t.Fatalf("alias route: %d", code)
	}
	code, env := a.json(http.MethodGet, "/api/v1/likes/videos", fan, nil)
	liked := decode[pageBody[videoBody]](t, env)
	if code != http.StatusOK || liked.TotalItems != 1 || liked.Items[0].ID != id {
		t.Fatalf("liked videos: %d %+v", code, liked)
	}
}

func TestListingOverHTTP(t *testing.T) {
	a := newAPI(t)
	owner := a.signup("owner")
	for _, title := range []string{"a", "b", "c"} {
		a.publish(owner, title)
	}

	code, env := a.json(http.MethodGet, "/api/v1/videos?page=2&limit=2&sortBy=title&sortType=asc", owner, nil)
	page := decode[pageBody[videoBody]](t, env)
	if code != http.StatusOK || page.Page != 2 || page.TotalItems != 3 || page.TotalPages != 2 {
		t.Fatalf("page: %d %+v", code, page)
	}
	if len(page.Items) != 1 || page.Items[0].Title != "c" {
		t.Fatalf("items = %+v", page.Items)
	}

	for _, q := range []string{"limit=0", "limit=-1", "page=abc", "sortBy=password"} {
		if code, _ := a.json(http.MethodGet, "/api/v1/videos?"+q, owner, nil); code != http.StatusBadRequest {
			t.Fatalf("%s: %d", q, code)
		}
	}

	code, env = a.json(http.MethodGet, "/api/v1/videos?page=9", owner, nil)
	empty := decode[pageBody[videoBody]](t, env)
	if code != http.StatusOK || empty.Items == nil || len(empty.Items) != 0 {
		t.Fatalf("past last page: %d %s", code, env.Data)
	}
}

func TestMalformedIdentifiers(t *testing.T) {
	a := newAPI(t)
	token := a.signup("erin")

	for _, path := range []string{
		"/api/v1/videos/not-an-id",
		"/api/v1/comments/123",
		"/api/v1/playlist/%20",
	} {
		if code, _ := a.json(http.MethodGet, path, token, nil); code != http.StatusBadRequest {
			t.Fatalf("%s: %d", path, code)
		}
	}
	if code, _ := a.json(http.MethodGet, "/api/v1/videos/u/zzzzzzzzzzzzzzzz", token, nil); code != http.StatusBadRequest && code != http.StatusNotFound {
		t.Fatalf("unknown owner: %d", code)
	}
}

func TestPlaylistAndSubscriptionRoutes(t *testing.T) {
	a := newAPI(t)
	owner := a.signup("owner")
	fan := a.signup("fan")
	videoID := a.publish(owner, "clip")

	code, env := a.json(http.MethodPost, "/api/v1/playlist", owner, map[string]string{"name": "mix"})
	if code != http.StatusCreated {
		t.Fatalf("create playlist: %d %s", code, env.Message)
	}
	playlist := decode[struct {
		ID    string `json:"id"`
		Owner struct {
			ID string `json:"id"`
		} `json:"owner"`
	}](t, env)

	if code, _ = a.json(http.MethodPatch, "/api/v1/playlist/add/"+videoID+"/"+playlist.ID, fan, nil); code != http.StatusForbidden {
		t.Fatalf("stranger add: %d", code)
	}
	if code, env = a.json(http.MethodPatch, "/api/v1/playlist/add/"+videoID+"/"+playlist.ID, owner, nil); code != http.StatusOK {
		t.Fatalf("add: %d %s", code, env.Message)
	}
	code, env = a.json(http.MethodGet, "/api/v1/playlist/"+playlist.ID, fan, nil)
	detail := decode[struct {
		TotalVideos int64               `json:"totalVideos"`
		Videos      pageBody[videoBody] `json:"videos"`
	}](t, env)
	if code != http.StatusOK || detail.TotalVideos != 1 || detail.Videos.Items[0].ID != videoID {
		t.Fatalf("playlist detail: %d %+v", code, detail)
	}

	channelID := playlist.Owner.ID
	code, env = a.json(http.MethodPost, "/api/v1/subscriptions/c/"+channelID, fan, nil)
	sub := decode[struct {
		IsSubscribed bool `json:"isSubscribed"`
	}](t, env)
	if code != http.StatusOK || !sub.IsSubscribed {
		t.Fatalf("subscribe: %d %+v", code, sub)
	}
	if code, _ = a.json(http.MethodPost, "/api/v1/subscriptions/c/"+channelID, owner, nil); code != http.StatusBadRequest {
		t.Fatalf("self subscribe: %d", code)
	}

	code, env = a.json(http.MethodGet, "/api/v1/users/c/owner", fan, nil)
	profile := decode[struct {
		SubscribersCount int64 `json:"subscribersCount"`
		IsSubscribed     bool  `json:"isSubscribed"`
	}](t, env)
	if code != http.StatusOK || profile.SubscribersCount != 1 || !profile.IsSubscribed {
		t.Fatalf("channel profile: %d %+v", code, profile)
	}
}

func TestHealthz(t *testing.T) {
	a := newAPI(t)
	if code, _ := a.json(http.MethodGet, "/healthz", "", nil); code != http.StatusOK {
		t.Fatalf("healthz: %d", code)
	}
}
