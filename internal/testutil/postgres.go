// Package testutil provides helpers for tests that need a live PostgreSQL
// server. Containers are started with testcontainers and torn down through
// t.Cleanup.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// PostgresImage is the Docker image used for PostgreSQL test containers
	PostgresImage = "docker.io/postgres:16-alpine"

	TestDatabase = "jsonlex"
	TestUsername = "jsonlex"
	TestPassword = "jsonlex"

	// ConnectionEnv names a server to use instead of starting a container
	ConnectionEnv = "JSONLEX_TEST_CONNECTION"
)

// PostgresConnString returns a connection string for a disposable PostgreSQL
// database. When JSONLEX_TEST_CONNECTION is set it is returned as is;
// otherwise a container is started. The test is skipped in -short mode.
func PostgresConnString(t *testing.T) string {
	t.Helper()

	if conn := os.Getenv(ConnectionEnv); conn != "" {
		return conn
	}
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithDatabase(TestDatabase),
		postgres.WithUsername(TestUsername),
		postgres.WithPassword(TestPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("PostgreSQL container not available: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port.Port(), TestUsername, TestPassword, TestDatabase)
}
