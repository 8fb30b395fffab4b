package main

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
)

type healthPayload struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

// resolvedHostAddress looks up the address the host name resolves to, the
// way a liveness probe reports where it is running.
func resolvedHostAddress() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(hostname)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}

func makeHealth(echo, pathEcho *string) healthPayload {
	return healthPayload{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     resolvedHostAddress(),
		Echo:          echo,
		PathEcho:      pathEcho,
	}
}

func queryEcho(r *http.Request) *string {
	if !r.URL.Query().Has("echo") {
		return nil
	}
	echo := r.URL.Query().Get("echo")
	return &echo
}

// healthCheckHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns a fixed success payload plus the resolved host address and an optional echo of caller-supplied text.
//	@Tags			health
//	@Produce		json
//	@Param			echo	query		string	false	"Optional echo string"
//	@Success		200		{object}	healthPayload
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, makeHealth(queryEcho(r), nil)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// healthEchoHandler godoc
//
//	@Summary		Liveness probe with path echo
//	@Description	Same as /health with a required echo segment in the URL path.
//	@Tags			health
//	@Produce		json
//	@Param			echo	path		string	true	"Required echo in the URL path"
//	@Success		200		{object}	healthPayload
//	@Router			/health/{echo} [get]
func (app *application) healthEchoHandler(w http.ResponseWriter, r *http.Request) {
	pathEcho := chi.URLParam(r, "echo")

	if err := writeJSON(w, http.StatusOK, makeHealth(queryEcho(r), &pathEcho)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Reviews and Ratings API. See /swagger/index.html for the OpenAPI UI.",
	})
}
