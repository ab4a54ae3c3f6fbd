package locale

// Provider reports the active locale tag, e.g. "en_US".
type Provider interface {
	Current() string
}

type staticProvider struct {
	tag string
}

// NewStaticProvider returns a provider pinned to the configured locale,
// defaulting to en_US when unset.
func NewStaticProvider(tag string) Provider {
	if tag == "" {
		tag = "en_US"
	}
	return &staticProvider{tag: tag}
}

func (p *staticProvider) Current() string {
	return p.tag
}
