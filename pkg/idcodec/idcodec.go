// Package idcodec turns internal snowflake ids into the opaque identifiers
// exposed over HTTP and back.
package idcodec

import (
	"errors"
	"sync"

	"github.com/speps/go-hashids/v2"
)

const minLength = 12

var ErrMalformed = errors.New("malformed identifier")

var (
	mu sync.RWMutex
	hd *hashids.HashID
)

func init() {
	if err := SetSalt("vidtube"); err != nil {
		panic(err)
	}
}

// SetSalt replaces the codec. Ids encoded under the previous salt stop decoding.
func SetSalt(salt string) error {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength
	h, err := hashids.NewWithData(data)
	if err != nil {
		return err
	}
	mu.Lock()
	hd = h
	mu.Unlock()
	return nil
}

func Encode(id int64) string {
	mu.RLock()
	defer mu.RUnlock()
	s, err := hd.EncodeInt64([]int64{id})
	if err != nil {
		return ""
	}
	return s
}

// Decode validates s and returns the id it carries.
func Decode(s string) (int64, error) {
	if len(s) < minLength {
		return 0, ErrMalformed
	}
	mu.RLock()
	defer mu.RUnlock()
	ids, err := hd.DecodeInt64WithError(s)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrMalformed
	}
	return ids[0], nil
}
