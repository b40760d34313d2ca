// pkg/installer/client.go
package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
)

// Client downloads vendor artifacts
type Client struct {
	httpClient *http.Client
	userAgent  string
	progress   io.Writer
}

// NewClient creates a client without a request timeout
func NewClient() *Client {
	return NewClientWithTimeout(0)
}

// NewClientWithTimeout creates a client with a custom timeout
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: "nrfjprog-install/1.0",
	}
}

// SetProgress enables a progress bar written to w. A nil w disables it.
func (c *Client) SetProgress(w io.Writer) {
	c.progress = w
}

// Get performs an HTTP GET request. Any status other than 200 is an error.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return resp, nil
}

// Download writes the body of url to w
func (c *Client) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return io.Copy(c.withProgress(w, resp.ContentLength, filepath.Base(resp.Request.URL.Path)), resp.Body)
}

// DownloadFile fetches url into dest on fsys, creating parent directories.
// The file is only created once the server has answered with 200.
func (c *Client) DownloadFile(ctx context.Context, url string, fsys afero.Fs, dest string) (int64, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := fsys.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("creating directory: %w", err)
	}

	f, err := fsys.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}

	written, err := io.Copy(c.withProgress(f, resp.ContentLength, filepath.Base(dest)), resp.Body)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return written, fmt.Errorf("writing file: %w", err)
	}

	return written, nil
}

func (c *Client) withProgress(w io.Writer, size int64, name string) io.Writer {
	if c.progress == nil {
		return w
	}

	bar := progressbar.NewOptions64(
		size,
		progressbar.OptionSetWriter(c.progress),
		progressbar.OptionSetDescription("downloading "+name),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(c.progress, "\n")
		}),
	)
	return io.MultiWriter(w, bar)
}
