package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/Tyrowin/hello-server/internal/server"
	"github.com/Tyrowin/hello-server/internal/telemetry"
	"github.com/Tyrowin/hello-server/test/testhelpers"
)

// TestRunPortInUse verifies run returns the bind error instead of retrying,
// so main exits non-zero.
func TestRunPortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to occupy port: %v", err)
	}
	defer func() { _ = occupied.Close() }()

	port := occupied.Addr().(*net.TCPAddr).Port
	t.Setenv(server.PortEnvVar, strconv.Itoa(port))
	t.Setenv(telemetry.EndpointEnvVar, "")

	runErr := make(chan error, 1)
	go func() {
		runErr <- run(context.Background())
	}()

	select {
	case err := <-runErr:
		if !errors.Is(err, syscall.EADDRINUSE) {
			t.Errorf("Expected error wrapping EADDRINUSE, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return on an occupied port")
	}
}

// TestRunShutsDownOnCancel verifies run serves the routes and returns nil
// once its context is cancelled.
func TestRunShutsDownOnCancel(t *testing.T) {
	_, port, err := net.SplitHostPort(testhelpers.FreeAddr(t))
	if err != nil {
		t.Fatalf("Failed to split address: %v", err)
	}
	t.Setenv(server.PortEnvVar, port)
	t.Setenv(telemetry.EndpointEnvVar, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- run(ctx)
	}()

	baseURL := "http://127.0.0.1:" + port
	testhelpers.WaitForServer(t, baseURL+"/", 5*time.Second)

	resp := testhelpers.MakeRequest(t, http.MethodGet, baseURL+"/evening")
	testhelpers.AssertStatusCode(t, resp, http.StatusOK)
	testhelpers.AssertBody(t, resp, "Good evening")

	cancel()

	select {
	case err := <-runErr:
		if err != nil {
			t.Errorf("Expected nil after shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
