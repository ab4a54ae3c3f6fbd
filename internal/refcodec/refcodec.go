package refcodec

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Codec translates internal order ids into the references the gateway
// sees. Encode is deterministic and URL-safe; Decode is the lookup
// direction used when a callback hands the reference back.
type Codec interface {
	Encode(id uint64) string
	Decode(ref string) (uint64, error)
}

type base64Codec struct {
	prefix string
}

// NewCodec returns a codec that base64url-encodes prefix+id. The
// prefix lets several storefronts share one merchant account without
// colliding references.
func NewCodec(prefix string) Codec {
	return &base64Codec{prefix: prefix}
}

func (c *base64Codec) Encode(id uint64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.prefix + strconv.FormatUint(id, 10)))
}

func (c *base64Codec) Decode(ref string) (uint64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ref)
	if err != nil {
		return 0, fmt.Errorf("decode order reference: %w", err)
	}

	digits, ok := strings.CutPrefix(string(raw), c.prefix)
	if !ok {
		return 0, fmt.Errorf("order reference %q has unexpected prefix", ref)
	}

	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse order reference id: %w", err)
	}

	return id, nil
}
