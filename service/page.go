package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"Vidtube/dao"
	"Vidtube/pkg/response"
	"Vidtube/types"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// listing describes which columns a listing may be sorted by.
type listing struct {
	sorts       map[string]string
	defaultSort string
	defaultDesc bool
	// tieBreak keeps equal sort keys in a stable order across pages.
	tieBreak string
	// selects restricts columns when the listing joins other tables.
	selects string
}

type pageSpec struct {
	page  int
	limit int
	dao.Page
}

var (
	videoListing = listing{
		sorts: map[string]string{
			"createdAt": "videos.created_at",
			"title":     "videos.title",
			"views":     "videos.views",
			"duration":  "videos.duration",
		},
		defaultSort: "createdAt",
		defaultDesc: true,
		tieBreak:    "videos.id",
	}
	historyListing = listing{
		sorts:       map[string]string{"watchedAt": "watch_histories.created_at"},
		defaultSort: "watchedAt",
		defaultDesc: true,
		tieBreak:    "watch_histories.id",
		selects:     "videos.*",
	}
	likedListing = listing{
		sorts:       map[string]string{"likedAt": "likes.created_at"},
		defaultSort: "likedAt",
		defaultDesc: true,
		tieBreak:    "likes.id",
		selects:     "videos.*",
	}
	playlistVideoListing = listing{
		sorts:       map[string]string{"addedAt": "playlist_videos.created_at"},
		defaultSort: "addedAt",
		tieBreak:    "playlist_videos.id",
		selects:     "videos.*",
	}
	commentListing = listing{
		sorts:       map[string]string{"createdAt": "comments.created_at"},
		defaultSort: "createdAt",
		defaultDesc: true,
		tieBreak:    "comments.id",
	}
	tweetListing = listing{
		sorts:       map[string]string{"createdAt": "tweets.created_at"},
		defaultSort: "createdAt",
		defaultDesc: true,
		tieBreak:    "tweets.id",
	}
	playlistListing = listing{
		sorts: map[string]string{
			"createdAt": "playlists.created_at",
			"name":      "playlists.name",
		},
		defaultSort: "createdAt",
		defaultDesc: true,
		tieBreak:    "playlists.id",
	}
	subscriptionListing = listing{
		sorts:       map[string]string{"subscribedAt": "subscriptions.created_at"},
		defaultSort: "subscribedAt",
		defaultDesc: true,
		tieBreak:    "subscriptions.id",
		selects:     "users.*",
	}
)

// resolve validates q against the listing. Sorting is applied before skip and
// limit, so the order string always ends with the tie-break column.
func (l listing) resolve(q *types.PageQuery) (*pageSpec, error) {
	if q == nil {
		q = &types.PageQuery{}
	}
	page, err := positive(q.Page, defaultPage, "page")
	if err != nil {
		return nil, err
	}
	limit, err := positive(q.Limit, defaultLimit, "limit")
	if err != nil {
		return nil, err
	}
	if limit > maxLimit {
		return nil, response.InvalidArgument(fmt.Sprintf("limit must not exceed %d", maxLimit))
	}
	if page > math.MaxInt32 {
		return nil, response.InvalidArgument("page is out of range")
	}

	sortBy := strings.TrimSpace(q.SortBy)
	if sortBy == "" {
		sortBy = l.defaultSort
	}
	column, ok := l.sorts[sortBy]
	if !ok {
		return nil, response.InvalidArgument("unsupported sortBy: " + sortBy)
	}

	desc := l.defaultDesc
	switch strings.ToLower(strings.TrimSpace(q.SortType)) {
	case "":
	case "asc", "ascending":
		desc = false
	case "desc", "descending":
		desc = true
	default:
		return nil, response.InvalidArgument("sortType must be asc or desc")
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	return &pageSpec{
		page:  page,
		limit: limit,
		Page: dao.Page{
			Offset: (page - 1) * limit,
			Limit:  limit,
			Order:  fmt.Sprintf("%s %s, %s %s", column, dir, l.tieBreak, dir),
			Select: l.selects,
		},
	}, nil
}

func positive(raw string, def int, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, response.InvalidArgument(name + " must be a positive integer")
	}
	return n, nil
}
