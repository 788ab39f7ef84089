// Package server exposes the fixed-text HTTP handlers backing the route table.
package server

import (
	"log"
	"net/http"
	"strconv"
)

const (
	helloBody    = "Hello world"
	eveningBody  = "Good evening"
	notFoundBody = "Not Found"

	textContentType = "text/plain; charset=utf-8"
)

// HelloHandler responds with the greeting served at the root path.
func HelloHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, helloBody)
}

// EveningHandler responds with the evening greeting.
func EveningHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, eveningBody)
}

// NotFoundHandler is the catch-all for every request that matches no route.
// Unlike http.NotFound it writes the body without a trailing newline.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, notFoundBody)
}

func writeText(w http.ResponseWriter, status int, body string) {
	h := w.Header()
	h.Set("Content-Type", textContentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
