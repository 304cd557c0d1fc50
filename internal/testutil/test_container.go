//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// shared holds the one MongoDB container a test package runs against.
var shared struct {
	once      sync.Once
	container *MongoDBContainer
	err       error
}

// GetSharedMongoDB starts the package's MongoDB container on first use and
// returns it on every later call.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	shared.once.Do(func() {
		shared.container, shared.err = SetupMongoDB(ctx)
	})
	return shared.container, shared.err
}

// SetupTestMainWithMongoDB runs m against a shared MongoDB container and
// terminates the container afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := GetSharedMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := container.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "testutil: cleanup shared MongoDB container: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the connection URI of the shared container.
// It panics outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if shared.container == nil {
		panic("testutil: shared MongoDB container not started")
	}
	return shared.container.URI
}

// SanitizeDBName turns a test name into a valid, unique MongoDB database name.
// Path separators become underscores, the name is cut to 50 bytes and a
// timestamp suffix is appended.
func SanitizeDBName(testName string) string {
	sanitized := dbNameReplacer.Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_")
