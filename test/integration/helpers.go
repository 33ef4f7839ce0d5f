//go:build integration
// +build integration

package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/leefowlercu/go-membercrm/membercrm"
)

const (
	defaultTestMemberID = "TKT100001"
	defaultTestSeekerID = "00Q00005"
)

// skipIfNotIntegration skips the test if INTEGRATION_TESTS is not set to "true"
func skipIfNotIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TESTS=true to run.")
	}
}

// useLiveInstance reports whether the tests should run against a real CRM
// configured through MEMBERCRM_* variables instead of the mock
func useLiveInstance() bool {
	return os.Getenv("MEMBERCRM_INSTANCE_URL") != ""
}

// getTestMemberID returns a member number known to exist on the instance
func getTestMemberID() string {
	if id := os.Getenv("MEMBERCRM_TEST_MEMBER_ID"); id != "" {
		return id
	}
	return defaultTestMemberID
}

// getTestSeekerID returns a seeker record ID known to exist on the instance
func getTestSeekerID() string {
	if id := os.Getenv("MEMBERCRM_TEST_SEEKER_ID"); id != "" {
		return id
	}
	return defaultTestSeekerID
}

// testLogger returns a debug logger that writes through t.Log
func testLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupClient creates an authenticated CRM client for testing
func setupClient(t *testing.T) *membercrm.Client {
	t.Helper()
	skipIfNotIntegration(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		client *membercrm.Client
		err    error
	)
	if useLiveInstance() {
		client, err = membercrm.NewClientFromEnv(ctx, membercrm.WithLogger(testLogger(t)))
	} else {
		creds := membercrm.StaticCredentials{
			AccessToken: mockAccessToken,
			InstanceURL: GetMockCRMServerURL(),
		}
		client, err = membercrm.NewClientWithCredentials(ctx, nil, creds, membercrm.WithLogger(testLogger(t)))
	}
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	t.Logf("Created CRM client with address: %s", client.Address.String())
	return client
}

// requireMock skips tests that depend on the mock dataset
func requireMock(t *testing.T) {
	t.Helper()
	if useLiveInstance() {
		t.Skip("Skipping mock-only test against a live instance")
	}
}
