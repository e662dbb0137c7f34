// Package media talks to the object storage that holds avatars, covers,
// thumbnails and video files.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"Vidtube/config"

	"github.com/google/uuid"
)

const (
	FolderAvatar    = "avatars"
	FolderCover     = "covers"
	FolderVideo     = "videos"
	FolderThumbnail = "thumbnails"
)

// Object is a stored media file. PublicID identifies it for Destroy.
type Object struct {
	URL      string
	PublicID string
}

type UploadInput struct {
	LocalPath   string
	Folder      string
	ContentType string
	Ext         string
}

// Store uploads local files and destroys stored objects.
// Destroy of an object that no longer exists returns nil.
type Store interface {
	Upload(ctx context.Context, in UploadInput) (*Object, error)
	Destroy(ctx context.Context, publicID string) error
}

// NewStore picks the backend named by media.driver.
func NewStore(ctx context.Context, conf *config.Config) (Store, error) {
	switch conf.Media.Driver {
	case config.MediaDriverOss:
		return NewOssStore(conf.Oss, conf.Media.PublicBaseURL), nil
	case config.MediaDriverMinio:
		return NewMinioStore(ctx, conf.Minio, conf.Media.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown media driver %q", conf.Media.Driver)
	}
}

// objectKey 生成对象路径: folder/yyyy/mm/dd/uuid.ext
func objectKey(folder, ext string) string {
	return path.Join(folder, time.Now().Format("2006/01/02"), uuid.NewString()+ext)
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
