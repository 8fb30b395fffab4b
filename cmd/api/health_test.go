package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.EqualValues(t, http.StatusOK, body["status"])
	assert.Equal(t, "OK", body["status_message"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["ip_address"])
	assert.Nil(t, body["echo"])
	assert.Nil(t, body["path_echo"])
}

func TestHealthCheckQueryEcho(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodGet, "/health?echo=ping", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "ping", body["echo"])
	assert.Nil(t, body["path_echo"])
}

func TestHealthCheckPathEcho(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodGet, "/health/hello?echo=ping", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "ping", body["echo"])
	assert.Equal(t, "hello", body["path_echo"])
}

func TestRoot(t *testing.T) {
	ta := newTestApp(t)

	rr := ta.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, decodeBody(t, rr)["message"], "Reviews and Ratings")
}
