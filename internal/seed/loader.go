// Package seed imports an initial product catalog from newline-delimited
// JSON files, plain or gzip-compressed, served over HTTP or read from disk.
package seed

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Lixing-Zhang/ecommerce-backend/internal/models"
)

// Loader reads product requests from seed sources
type Loader struct {
	client   *http.Client
	validate *validator.Validate
}

// sourceLoadResult holds the result of loading a single source
type sourceLoadResult struct {
	index    int
	products []models.ProductRequest
	err      error
}

// NewLoader creates a loader with a generous download timeout
func NewLoader() *Loader {
	return &Loader{
		client:   &http.Client{Timeout: 5 * time.Minute},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads all sources concurrently and returns their products in source
// order. It fails if any source fails.
func (l *Loader) Load(ctx context.Context, sources []string) ([]models.ProductRequest, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no seed sources provided")
	}

	resultChan := make(chan sourceLoadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			products, err := l.loadSource(ctx, source)
			resultChan <- sourceLoadResult{
				index:    index,
				products: products,
				err:      err,
			}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]sourceLoadResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	var products []models.ProductRequest
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load seed source %d (%s): %w", i+1, sources[i], result.err)
		}
		products = append(products, result.products...)
	}

	return products, nil
}

func (l *Loader) loadSource(ctx context.Context, source string) ([]models.ProductRequest, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}

	r, err := decompress(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	defer r.Close()

	return l.parseProducts(r)
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// decompress transparently unwraps gzip content, detected by its magic bytes.
// Closing the returned reader also closes rc.
func decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)

	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if !bytes.Equal(magic, []byte{0x1f, 0x8b}) {
		return &sourceReader{Reader: br, closers: []io.Closer{rc}}, nil
	}

	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	return &sourceReader{Reader: gz, closers: []io.Closer{gz, rc}}, nil
}

// sourceReader reads decoded content and closes every layer beneath it
type sourceReader struct {
	io.Reader
	closers []io.Closer
}

func (r *sourceReader) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// parseProducts reads one JSON product request per non-blank line
func (l *Loader) parseProducts(r io.Reader) ([]models.ProductRequest, error) {
	var products []models.ProductRequest

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var p models.ProductRequest
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := l.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return products, nil
}
