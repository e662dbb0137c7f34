package models

// All lists every table managed by the migrate command.
func All() []any {
	return []any{
		&User{},
		&Video{},
		&Comment{},
		&Tweet{},
		&Like{},
		&WatchHistory{},
		&Playlist{},
		&PlaylistVideo{},
		&Subscription{},
	}
}
