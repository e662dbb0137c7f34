package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"Vidtube/pkg/idcodec"
	"Vidtube/pkg/log"
	"Vidtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pathID decodes the public identifier held by the named path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	return decodeID(c.Param(name), name)
}

func decodeID(raw, name string) (int64, error) {
	id, err := idcodec.Decode(strings.TrimSpace(raw))
	if err != nil {
		return 0, response.InvalidArgument("invalid " + name)
	}
	return id, nil
}

// uploads keeps the multipart files of one request on local disk until the
// handler is done with them.
type uploads struct {
	dir   string
	paths []string
}

func newUploads(dir string) *uploads {
	return &uploads{dir: dir}
}

// save stores the file sent as field and returns its path, or "" when the
// request carries no such file.
func (u *uploads) save(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", response.InvalidArgument("invalid " + field + " upload")
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(u.dir, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", err
	}
	u.paths = append(u.paths, dst)
	return dst, nil
}

func (u *uploads) cleanup() {
	for _, p := range u.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.L.Warn("remove temp upload", zap.String("path", p), zap.Error(err))
		}
	}
}

// optionalForm returns nil when the form field was not sent at all.
func optionalForm(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}
