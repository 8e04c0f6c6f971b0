package taxdump

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func buildArchive(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	files := map[string]string{
		"taxdump/nodes.dmp":  "1\t|\t1\t|\tno rank\t|\n",
		"taxdump/names.dmp":  "1\t|\troot\t|\t\t|\tscientific name\t|\n",
		"taxdump/merged.dmp": "2\t|\t1\t|\n",
	}
	for name, content := range files {
		hdr := &tar.Header{Name: name, Size: int64(len(content)), Mode: 0o644}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("WriteHeader: %v", err)
		}
		if _, err := io.WriteString(tw, content); err != nil {
			t.Fatalf("write content: %v", err)
		}
	}
	tw.Close()
	gz.Close()
	return buf.Bytes()
}

func TestFetcherEnsureDownloadsAndExtracts(t *testing.T) {
	archive := buildArchive(t)
	httpClient = &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(bytes.NewReader(archive)),
			Header:     make(http.Header),
		}, nil
	})}

	dir := t.TempDir()
	f := NewFetcher(filepath.Join(dir, "taxdump"), time.Hour)
	files, err := f.Ensure()
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	for _, p := range []string{files.NodesPath, files.NamesPath, files.MergedPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected extracted file %s: %v", p, err)
		}
	}
}

func TestFetcherEnsureUsesFreshCache(t *testing.T) {
	calls := 0
	httpClient = &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		t.Fatalf("HTTP should not be called when cache is fresh")
		return nil, nil
	})}

	dir := filepath.Join(t.TempDir(), "taxdump")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nodes.dmp"), []byte("1\t|\t1\t|\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f := NewFetcher(dir, time.Hour)
	if _, err := f.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no HTTP calls, got %d", calls)
	}
}
