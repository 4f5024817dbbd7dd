package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(time.Millisecond)
	h := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)

		select {
		case <-r.Context().Done():
		default:
			t.Error("request context not canceled")
		}
	}

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	m(h)(nil, r)
}

func TestNewTimeoutMiddlewareDisabled(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(0)
	h := func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		assert.False(t, ok)
	}

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	m(h)(nil, r)
}

func TestNewLoggingMiddleware(t *testing.T) {
	t.Parallel()

	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	h := chain(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
		NewLoggingMiddleware(l),
		NewTimeoutMiddleware(time.Second),
	)

	r := httptest.NewRequest(http.MethodDelete, "/stats/cs1", nil)
	w := httptest.NewRecorder()
	h(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, http.StatusNoContent, entry.Data["status"])
	assert.Equal(t, "/stats/cs1", entry.Data["path"])
	assert.Equal(t, http.MethodDelete, entry.Data["method"])
}
