package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServeOverTCP(t *testing.T) {
	s := newTestServer(t)

	require.NoError(t, s.Listen())
	go s.Serve()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, s.Shutdown(ctx))
	}()

	base := fmt.Sprintf("http://%s", s.Addr().String())

	res, err := http.Get(base + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, Greeting, string(body))

	res2, err := http.Get(base + "/missing")
	require.NoError(t, err)
	res2.Body.Close()

	assert.Equal(t, http.StatusNotFound, res2.StatusCode)
}

func TestListenBindFailure(t *testing.T) {
	// Occupy a port, then try to bind the server to it
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	s := NewServer(&Config{
		Addr:   occupied.Addr().String(),
		Logger: zap.NewNop(),
	})

	err = s.Listen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind")
	assert.Nil(t, s.Addr())
}
