package refcodec

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := map[string]struct {
		prefix string
		id     uint64
	}{
		"no prefix":    {prefix: "", id: 42},
		"with prefix":  {prefix: "shop1-", id: 42},
		"zero id":      {prefix: "shop1-", id: 0},
		"max uint64":   {prefix: "", id: 18446744073709551615},
		"typical size": {prefix: "hu-", id: 100023},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			codec := NewCodec(tc.prefix)

			ref := codec.Encode(tc.id)
			id, err := codec.Decode(ref)

			require.NoError(t, err)
			assert.Equal(t, tc.id, id)
		})
	}
}

func TestEncodeIsStableAndURLSafe(t *testing.T) {
	codec := NewCodec("shop1-")

	first := codec.Encode(42)
	second := codec.Encode(42)

	assert.Equal(t, first, second)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), first)
}

func TestEncodeDistinctIDs(t *testing.T) {
	codec := NewCodec("")

	seen := map[string]struct{}{}
	for id := uint64(1); id <= 1000; id++ {
		ref := codec.Encode(id)
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference for id %d", id)
		seen[ref] = struct{}{}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := NewCodec("shop1-")

	testCases := map[string]string{
		"not base64":      "!!!!",
		"wrong prefix":    NewCodec("other-").Encode(42),
		"not numeric":     "c2hvcDEtYWJj", // shop1-abc
		"empty reference": "",
	}

	for name, ref := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(ref)
			assert.Error(t, err)
		})
	}
}
