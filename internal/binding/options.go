package binding

import "golang.org/x/text/language"

// DefaultCulture is used when neither the descriptor nor an option names one.
var DefaultCulture = language.English

type options struct {
	strictOneTime bool
	culture       language.Tag
}

// Option configures a Binding.
type Option func(*options)

// WithStrictOneTime makes OneTime bindings push once and never subscribe
// to model changes.
func WithStrictOneTime() Option {
	return func(o *options) { o.strictOneTime = true }
}

// WithCulture sets the culture for descriptors that do not name one.
func WithCulture(tag language.Tag) Option {
	return func(o *options) { o.culture = tag }
}

func newOptions(opts []Option) options {
	o := options{culture: DefaultCulture}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
