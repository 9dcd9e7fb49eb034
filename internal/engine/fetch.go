package engine

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetch downloads the dataset from url to path unless path already
// exists. A single attempt is made; any failure leaves no partial
// file behind. The caller decides whether a failure is fatal.
func Fetch(url, path string, timeout time.Duration) error {
	if _, err := os.Stat(path); err == nil {
		log.Printf("fetch: %s already present, skipping download", path)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir data dir: %w", err)
		}
	}

	log.Printf("fetch: downloading %s", url)
	start := time.Now()

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write dataset file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize dataset file: %w", err)
	}

	log.Printf("fetch: %d bytes to %s in %v", n, path, time.Since(start))
	return nil
}
