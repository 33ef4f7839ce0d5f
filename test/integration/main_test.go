//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"
)

// TestMain sets up and tears down the mock CRM for all integration tests
func TestMain(m *testing.M) {
	// Skip if not running integration tests
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		os.Exit(m.Run())
	}

	// The mock stands in for the CRM unless a live instance is configured
	if !useLiveInstance() {
		InitMockServer()
	}

	// Run tests
	exitCode := m.Run()

	// Cleanup
	CloseMockServer()

	os.Exit(exitCode)
}
