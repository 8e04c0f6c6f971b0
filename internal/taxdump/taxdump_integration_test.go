//go:build integration
// +build integration

package taxdump

import "testing"

// This file exercises the real NCBI taxdump endpoint. Excluded by default;
// run with `go test -tags=integration ./...`.

func TestIntegrationFetchRealArchive(t *testing.T) {
	t.Skip("integration tests are disabled by default")
}
