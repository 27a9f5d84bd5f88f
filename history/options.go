package history

import (
	"errors"

	"github.com/go-pkgz/clist"
)

type options struct {
	maxSteps int
	listOpts []clist.Option
}

// Option func type
type Option func(o *options) error

// MaxSteps functional option defines how many steps to keep, the oldest dropped first.
// By default it is 0, which means unlimited.
func MaxSteps(max int) Option {
	return func(o *options) error {
		if max < 0 {
			return errors.New("negative max steps")
		}
		o.maxSteps = max
		return nil
	}
}

// ListOptions functional option passes opts to the underlying clist.List
func ListOptions(opts ...clist.Option) Option {
	return func(o *options) error {
		o.listOpts = append(o.listOpts, opts...)
		return nil
	}
}
