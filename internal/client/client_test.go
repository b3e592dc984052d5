package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "Hi",
	}
}

func TestValidateOrdering(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Draft)
		want  string
	}{
		{"valid", func(d *Draft) {}, ""},
		{"missing name", func(d *Draft) { d.Name = "  " }, MsgNameRequired},
		{"missing email", func(d *Draft) { d.Email = "" }, MsgEmailRequired},
		{"bad email", func(d *Draft) { d.Email = "not-an-email" }, MsgEmailInvalid},
		{"missing message", func(d *Draft) { d.Message = "" }, MsgMessageRequired},
		// name failure outranks the rest
		{"everything wrong", func(d *Draft) { d.Name = ""; d.Email = "x"; d.Message = "" }, MsgNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mut(&d)
			assert.Equal(t, tt.want, Validate(d))
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/contact", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.Submit(context.Background(), validDraft())
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, MsgSent, res.Message)
	assert.Equal(t, int32(1), hits.Load())
}

func TestSubmitHoneypotSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	d := validDraft()
	d.Website = "http://spam.biz"

	res, err := c.Submit(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, MsgReceived, res.Message)
	assert.Equal(t, int32(0), hits.Load())
}

func TestSubmitSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid email address"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.Submit(context.Background(), validDraft())
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "Invalid email address", res.Message)
}

func TestSubmitGenericFallbackOnOpaqueError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	res, err := c.Submit(context.Background(), validDraft())
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, MsgGenericError, res.Message)
}

func TestSubmitNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable on purpose

	c := New(srv.URL, 200*time.Millisecond)
	res, err := c.Submit(context.Background(), validDraft())
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, MsgNetworkError, res.Message)
}
