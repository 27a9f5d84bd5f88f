package clist

import (
	"io"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// NewReporter parses uri and makes any of supported reporters
// supported URIs:
//   - panic://
//   - log://stderr?format=console&level=warn
//   - log://stdout?format=json
//   - exit://stderr?code=2&format=console
//
// Target (host) is stderr by default, format is json, level is error, exit code is 1.
func NewReporter(uri string) (Reporter, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "parse reporter uri %s", uri)
	}

	params, err := paramsFromQuery(u.Query())
	if err != nil {
		return nil, errors.Wrapf(err, "parse uri params %s", uri)
	}

	switch u.Scheme {
	case "panic":
		return PanicReporter{}, nil
	case "log", "exit":
		w, err := writerFor(u.Hostname())
		if err != nil {
			return nil, err
		}
		logger := newLogger(w, params.console)
		if u.Scheme == "exit" {
			return NewExitReporter(logger, params.code), nil
		}
		r := NewLogReporter(logger)
		r.Level = params.level
		return r, nil
	}
	return nil, errors.Errorf("unsupported reporter type %s", u.Scheme)
}

type reporterParams struct {
	console bool
	level   zerolog.Level
	code    int
}

func paramsFromQuery(q url.Values) (res reporterParams, err error) {
	res = reporterParams{level: zerolog.ErrorLevel, code: 1}
	errs := new(multierror.Error)

	if v := q.Get("format"); v != "" {
		switch v {
		case "json":
		case "console":
			res.console = true
		default:
			errs = multierror.Append(errs, errors.Errorf("format query param %s: unsupported", v))
		}
	}

	if v := q.Get("level"); v != "" {
		lvl, e := zerolog.ParseLevel(v)
		if e != nil {
			errs = multierror.Append(errs, errors.Wrapf(e, "level query param %s", v))
		} else {
			res.level = lvl
		}
	}

	if v := q.Get("code"); v != "" {
		code, e := strconv.Atoi(v)
		if e != nil {
			errs = multierror.Append(errs, errors.Wrapf(e, "code query param %s", v))
		} else {
			res.code = code
		}
	}

	return res, errs.ErrorOrNil()
}

func writerFor(target string) (io.Writer, error) {
	switch target {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}
	return nil, errors.Errorf("unsupported reporter target %s", target)
}

func newLogger(w io.Writer, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
