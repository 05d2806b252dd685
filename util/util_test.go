package util

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Next()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Value())
	assert.Equal(t, 50, c.Next())

	c.Reset()
	assert.Zero(t, c.Value())
}

func TestSendMsg(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if r.Header.Get("Content-Type") != "text/plain" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("want text"))
			return
		}
		w.Write([]byte(r.Method + " " + r.URL.Path + " " + string(body)))
	}))
	defer srv.Close()
	addr := strings.TrimPrefix(srv.URL, "http://")

	out, err := SendMsg(http.MethodPost, addr+"/check", "(assert true)", TextRequest())
	require.NoError(t, err)
	assert.Equal(t, "POST /check (assert true)", out)

	out, err = SendMsg(http.MethodPost, addr+"/check", "{}", JsonRequest())
	require.ErrorIs(t, err, ErrBadResponse)
	assert.Equal(t, "want text", out)

	_, err = SendMsg(http.MethodGet, "127.0.0.1:1/unreachable", "")
	require.ErrorIs(t, err, ErrSendFailed)
}
