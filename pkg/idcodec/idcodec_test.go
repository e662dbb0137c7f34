package idcodec

import (
	"testing"

	"Vidtube/pkg/snowflake"
)

func TestEncodeDecode(t *testing.T) {
	id := snowflake.GenID()
	s := Encode(id)
	if len(s) < minLength {
		t.Fatalf("encoded %q shorter than %d", s, minLength)
	}
	got, err := Decode(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != id {
		t.Fatalf("got %d, want %d", got, id)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "abc", "not-an-id-at-all!!"} {
		if _, err := Decode(s); err == nil {
			t.Errorf("Decode(%q) succeeded", s)
		}
	}
}
