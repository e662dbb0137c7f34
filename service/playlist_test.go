package service

import (
	"context"
	"net/http"
	"testing"

	"Vidtube/models"
	"Vidtube/pkg/idcodec"
	"Vidtube/types"
)

func TestPlaylistLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.register(t, "owner")
	other := h.register(t, "other")
	v1 := h.publish(t, owner, "one")
	v2 := h.publish(t, other, "two")

	_, err := h.playlists.Create(ctx, owner, &types.CreatePlaylistRequest{Name: " "})
	wantCode(t, err, http.StatusBadRequest)

	p, err := h.playlists.Create(ctx, owner, &types.CreatePlaylistRequest{Name: "mix", Description: "d"})
	if err != nil {
		t.Fatal(err)
	}
	id, _ := idcodec.Decode(p.ID)

	for _, v := range []int64{v1, v2, v1} {
		if _, err := h.playlists.AddVideo(ctx, owner, id, v); err != nil {
			t.Fatal(err)
		}
	}
	_, err = h.playlists.AddVideo(ctx, other, id, v2)
	wantCode(t, err, http.StatusForbidden)
	_, err = h.playlists.AddVideo(ctx, owner, id, 4040)
	wantCode(t, err, http.StatusNotFound)

	detail, err := h.playlists.Get(ctx, other, id, nil)
	if err != nil {
		t.Fatal(err)
	}
	if detail.TotalVideos != 2 || detail.Videos.TotalItems != 2 || detail.Videos.Items[0].Title != "one" {
		t.Fatalf("detail = %+v", detail)
	}

	p, err = h.playlists.RemoveVideo(ctx, owner, id, v1)
	if err != nil || p.TotalVideos != 1 {
		t.Fatalf("remove: %+v %v", p, err)
	}

	name := "renamed"
	p, err = h.playlists.Update(ctx, owner, id, &types.UpdatePlaylistRequest{Name: &name})
	if err != nil || p.Name != "renamed" || p.Description != "d" {
		t.Fatalf("update: %+v %v", p, err)
	}
	_, err = h.playlists.Update(ctx, other, id, &types.UpdatePlaylistRequest{Name: &name})
	wantCode(t, err, http.StatusForbidden)

	list, err := h.playlists.ListByUser(ctx, owner, nil)
	if err != nil || list.TotalItems != 1 || list.Items[0].TotalVideos != 1 {
		t.Fatalf("list: %+v %v", list, err)
	}

	wantCode(t, h.playlists.Delete(ctx, other, id), http.StatusForbidden)
	if err := h.playlists.Delete(ctx, owner, id); err != nil {
		t.Fatal(err)
	}
	if n := h.count(t, &models.PlaylistVideo{}); n != 0 {
		t.Fatalf("entries left = %d", n)
	}
	_, err = h.playlists.Get(ctx, owner, id, nil)
	wantCode(t, err, http.StatusNotFound)
}
