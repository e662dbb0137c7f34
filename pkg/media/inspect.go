package media

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"
)

type Kind int

const (
	KindImage Kind = iota + 1
	KindVideo
)

var ErrInvalidFile = errors.New("invalid media file")

var allowedImages = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// FileInfo is what Inspect learned about an upload.
type FileInfo struct {
	ContentType string
	Ext         string
	Size        int64
}

// Inspect sniffs the file at p and checks it against kind and maxBytes.
// Images must also carry a decodable header.
func Inspect(p string, kind Kind, maxBytes int64) (*FileInfo, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 || (maxBytes > 0 && st.Size() > maxBytes) {
		return nil, errors.Wrapf(ErrInvalidFile, "size %d out of range", st.Size())
	}

	mt, err := mimetype.DetectFile(p)
	if err != nil {
		return nil, err
	}
	contentType, _, _ := strings.Cut(mt.String(), ";")
	info := &FileInfo{ContentType: contentType, Ext: mt.Extension(), Size: st.Size()}

	switch kind {
	case KindImage:
		if !allowedImages[contentType] {
			return nil, errors.Wrapf(ErrInvalidFile, "unsupported image type %s", contentType)
		}
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if _, _, err := image.DecodeConfig(f); err != nil {
			return nil, errors.Wrap(ErrInvalidFile, "undecodable image")
		}
	case KindVideo:
		if !strings.HasPrefix(contentType, "video/") {
			return nil, errors.Wrapf(ErrInvalidFile, "unsupported video type %s", contentType)
		}
	}
	return info, nil
}
