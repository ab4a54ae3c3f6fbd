package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackURL(t *testing.T) {
	testCases := map[string]struct {
		baseURL  string
		endpoint string
		expected string
	}{
		"plain base": {
			baseURL:  "https://shop.example.com/",
			endpoint: "process_card_payment",
			expected: "https://shop.example.com/?payment-callback=process_card_payment",
		},
		"base with path": {
			baseURL:  "https://example.com/shop",
			endpoint: "process_card_payment",
			expected: "https://example.com/shop?payment-callback=process_card_payment",
		},
		"existing query preserved": {
			baseURL:  "https://shop.example.com/?lang=hu",
			endpoint: "process_card_payment",
			expected: "https://shop.example.com/?lang=hu&payment-callback=process_card_payment",
		},
		"endpoint gets escaped": {
			baseURL:  "https://shop.example.com/",
			endpoint: "a b",
			expected: "https://shop.example.com/?payment-callback=a+b",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			builder, err := NewURLBuilder(tc.baseURL)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, builder.CallbackURL(tc.endpoint))
		})
	}
}

func TestNewURLBuilderRejectsRelativeBase(t *testing.T) {
	for _, baseURL := range []string{"", "/shop", "shop.example.com", "://bad"} {
		_, err := NewURLBuilder(baseURL)
		assert.Error(t, err, "base url %q", baseURL)
	}
}
