package service

import (
	"context"
	"net/http"
	"testing"

	"Vidtube/models"
	"Vidtube/pkg/idcodec"
)

func TestToggleLikeIsInvolution(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.register(t, "owner")
	fan := h.register(t, "fan")
	video := h.publish(t, owner, "clip")

	for i, want := range []bool{true, false, true, false} {
		st, err := h.likes.Toggle(ctx, fan, models.LikeSubjectVideo, video)
		if err != nil {
			t.Fatal(err)
		}
		if st.IsLiked != want {
			t.Fatalf("toggle %d: isLiked=%v", i, st.IsLiked)
		}
	}
	if n := h.count(t, &models.Like{}); n != 0 {
		t.Fatalf("likes = %d", n)
	}
}

func TestToggleLikeMissingSubject(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	fan := h.register(t, "fan")

	for _, subject := range []models.LikeSubject{models.LikeSubjectVideo, models.LikeSubjectComment, models.LikeSubjectTweet} {
		_, err := h.likes.Toggle(ctx, fan, subject, 31337)
		wantCode(t, err, http.StatusNotFound)
	}
	_, err := h.likes.Toggle(ctx, fan, models.LikeSubject("channel"), 1)
	wantCode(t, err, http.StatusBadRequest)
}

func TestLikeTweet(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	author := h.register(t, "author")
	fan := h.register(t, "fan")
	tw, err := h.tweets.Create(ctx, author, "hello world")
	if err != nil {
		t.Fatal(err)
	}
	id, _ := idcodec.Decode(tw.ID)

	st, err := h.likes.Toggle(ctx, fan, models.LikeSubjectTweet, id)
	if err != nil || !st.IsLiked {
		t.Fatalf("like tweet: %+v %v", st, err)
	}
	if err := h.tweets.Delete(ctx, author, id); err != nil {
		t.Fatal(err)
	}
	if n := h.count(t, &models.Like{}); n != 0 {
		t.Fatalf("tweet likes left = %d", n)
	}
}

func TestLikedVideosSkipsDeleted(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.register(t, "owner")
	fan := h.register(t, "fan")
	kept := h.publish(t, owner, "kept")
	gone := h.publish(t, owner, "gone")
	for _, id := range []int64{kept, gone} {
		if _, err := h.likes.Toggle(ctx, fan, models.LikeSubjectVideo, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := h.videos.Delete(ctx, owner, gone); err != nil {
		t.Fatal(err)
	}

	res, err := h.likes.LikedVideos(ctx, fan, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalItems != 1 || res.Items[0].Title != "kept" || res.Items[0].Owner.Username != "owner" {
		t.Fatalf("liked = %+v", res)
	}
}

func TestLikeCommentOnHiddenVideo(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.register(t, "owner")
	fan := h.register(t, "fan")
	video := h.publish(t, owner, "clip")
	c, err := h.comments.Add(ctx, owner, video, "pinned")
	if err != nil {
		t.Fatal(err)
	}
	commentID, _ := idcodec.Decode(c.ID)
	if _, err := h.videos.TogglePublish(ctx, owner, video); err != nil {
		t.Fatal(err)
	}

	_, err = h.likes.Toggle(ctx, fan, models.LikeSubjectComment, commentID)
	wantCode(t, err, http.StatusNotFound)
	if n := h.count(t, &models.Like{}); n != 0 {
		t.Fatalf("likes = %d", n)
	}

	st, err := h.likes.Toggle(ctx, owner, models.LikeSubjectComment, commentID)
	if err != nil || !st.IsLiked {
		t.Fatalf("owner like: %+v %v", st, err)
	}
}
