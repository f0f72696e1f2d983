package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/rudefinder/internal/config"
	"github.com/wgomg/rudefinder/internal/utils"
)

func TestServeAnswersUntilCancelled(t *testing.T) {
	t.Setenv("FINDER_SEPARATOR", "")
	t.Setenv("VOCABULARY_PATH", "")
	t.Setenv("VOCABULARY_WATCH", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, utils.NewDiscardLogger(), ln)
	}()

	client := &http.Client{Timeout: time.Second}
	assert.Eventually(t, func() bool {
		resp, err := client.Get(base + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "Rude Word Finder is running\n"
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := client.Post(base+"/find", "application/json", strings.NewReader(`{"words":["SEX"]}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"sex"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = client.Get(base + "/health")
	assert.Error(t, err)
}
