package service

import (
	"context"
	"net/http"
	"testing"
)

func TestSubscriptions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.register(t, "alpha")
	b := h.register(t, "beta")
	c := h.register(t, "gamma")

	_, err := h.subs.Toggle(ctx, a, a)
	wantCode(t, err, http.StatusBadRequest)
	_, err = h.subs.Toggle(ctx, a, 777)
	wantCode(t, err, http.StatusNotFound)

	for _, fan := range []int64{a, c} {
		st, err := h.subs.Toggle(ctx, fan, b)
		if err != nil || !st.IsSubscribed {
			t.Fatalf("subscribe: %+v %v", st, err)
		}
	}

	subs, err := h.subs.Subscribers(ctx, b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if subs.TotalItems != 2 || subs.Items[0].Username != "gamma" {
		t.Fatalf("subscribers = %+v", subs)
	}

	channels, err := h.subs.SubscribedChannels(ctx, a, nil)
	if err != nil || channels.TotalItems != 1 || channels.Items[0].Username != "beta" {
		t.Fatalf("channels = %+v %v", channels, err)
	}

	st, _ := h.subs.Toggle(ctx, a, b)
	if st.IsSubscribed {
		t.Fatal("second toggle should unsubscribe")
	}
}
