package clist

import "github.com/pkg/errors"

type options struct {
	reporter Reporter
}

// Option func type
type Option func(o *options) error

// WithReporter functional option sets the diagnostic sink for position errors.
// By default it is PanicReporter, i.e. the panic itself is the only diagnostic.
func WithReporter(r Reporter) Option {
	return func(o *options) error {
		if r == nil {
			return errors.New("nil reporter")
		}
		o.reporter = r
		return nil
	}
}

// WithReporterURI functional option sets the reporter made by NewReporter(uri)
func WithReporterURI(uri string) Option {
	return func(o *options) error {
		r, err := NewReporter(uri)
		if err != nil {
			return err
		}
		o.reporter = r
		return nil
	}
}
