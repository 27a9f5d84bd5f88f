package clist

import (
	"net/url"
	"os"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUrl_paramsFromQuery(t *testing.T) {
	tbl := []struct {
		url    string
		params reporterParams
		fail   bool
	}{
		{"log://stderr", reporterParams{level: zerolog.ErrorLevel, code: 1}, false},
		{"log://stderr?format=console&level=warn", reporterParams{console: true, level: zerolog.WarnLevel, code: 1}, false},
		{"exit://stderr?format=json&code=2&foo=bar", reporterParams{level: zerolog.ErrorLevel, code: 2}, false},
		{"log://stderr?format=xml", reporterParams{}, true},
		{"log://stderr?level=blah", reporterParams{}, true},
		{"exit://?code=abc", reporterParams{}, true},
	}

	for i, tt := range tbl {
		tt := tt
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			r, err := paramsFromQuery(u.Query())
			if tt.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params, r)
		})
	}
}

func TestUrl_NewPanic(t *testing.T) {
	res, err := NewReporter("panic://")
	require.NoError(t, err)
	_, ok := res.(PanicReporter)
	require.True(t, ok)
}

func TestUrl_NewLog(t *testing.T) {
	res, err := NewReporter("log://stdout?level=warn&format=console")
	require.NoError(t, err)
	r, ok := res.(*LogReporter)
	require.True(t, ok)
	assert.Equal(t, zerolog.WarnLevel, r.Level)

	res, err = NewReporter("log://")
	require.NoError(t, err)
	r, ok = res.(*LogReporter)
	require.True(t, ok)
	assert.Equal(t, zerolog.ErrorLevel, r.Level)
}

func TestUrl_NewExit(t *testing.T) {
	res, err := NewReporter("exit://stderr?code=5")
	require.NoError(t, err)
	r, ok := res.(*ExitReporter)
	require.True(t, ok)
	assert.Equal(t, 5, r.Code)
	assert.Equal(t, zerolog.FatalLevel, r.Level)

	res, err = NewReporter("exit://")
	require.NoError(t, err)
	assert.Equal(t, 1, res.(*ExitReporter).Code)
}

func TestUrl_NewFailed(t *testing.T) {
	_, err := NewReporter("blah://stderr")
	require.EqualError(t, err, "unsupported reporter type blah")

	_, err = NewReporter("log://syslog")
	require.EqualError(t, err, "unsupported reporter target syslog")

	_, err = NewReporter("exit://stderr?code=xyz")
	require.EqualError(t, err, "parse uri params exit://stderr?code=xyz: 1 error occurred:\n\t* code query param xyz: strconv.Atoi: parsing \"xyz\": invalid syntax\n\n")

	_, err = NewReporter("log://stderr?code=xyz&format=xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "format query param xml: unsupported")

	_, err = NewReporter("log://localhost:xxx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse reporter uri log://localhost:xxx")
}

func TestUrl_WithReporterURI(t *testing.T) {
	l, err := New[int](WithReporterURI("log://stderr"))
	require.NoError(t, err)
	_, ok := l.reporter.(*LogReporter)
	assert.True(t, ok)

	l, err = New[int]()
	require.NoError(t, err)
	assert.Equal(t, PanicReporter{}, l.reporter)
}

func TestWriterFor(t *testing.T) {
	w, err := writerFor("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	w, err = writerFor("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
}
