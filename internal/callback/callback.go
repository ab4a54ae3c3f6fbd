package callback

import (
	"fmt"
	"net/url"
)

// queryParam names the query argument the storefront routes payment
// callbacks on.
const queryParam = "payment-callback"

// URLBuilder assembles the URL the gateway redirects the shopper to
// once the transaction finishes.
type URLBuilder interface {
	CallbackURL(endpoint string) string
}

type urlBuilder struct {
	base *url.URL
}

func NewURLBuilder(baseURL string) (URLBuilder, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	return &urlBuilder{base: base}, nil
}

func (b *urlBuilder) CallbackURL(endpoint string) string {
	u := *b.base
	q := u.Query()
	q.Set(queryParam, endpoint)
	u.RawQuery = q.Encode()

	return u.String()
}
