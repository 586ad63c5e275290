//go:build api

// Package api contains end-to-end tests for the catalog API. They run
// against real MongoDB and Redis instances using testcontainers.
//
// Run tests with:
//
//	go test -tags=api -v ./test/api/...
package api

import (
	"context"
	"log"
	"os"
	"testing"

	"ecommerce-api/internal/validator"
	"ecommerce-api/test/api/testserver"
)

// testServer is the global test server instance shared across all tests.
var testServer *testserver.TestServer

// TestMain sets up the test server and runs all tests.
func TestMain(m *testing.M) {
	validator.RegisterCustomValidators()

	ctx := context.Background()

	log.Println("Starting test containers...")
	var err error
	testServer, err = testserver.New(ctx)
	if err != nil {
		log.Fatalf("Failed to create test server: %v", err)
	}
	log.Println("Test containers started successfully")

	code := m.Run()

	log.Println("Stopping test containers...")
	testServer.Cleanup(ctx)
	log.Println("Test containers stopped")

	os.Exit(code)
}
