package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// NewHTTPLoader fetches CSV rows with a GET request. Non-2xx responses fail
// the load; there is no retry.
func NewHTTPLoader(client *http.Client, url string) Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &csvLoader{
		location: url,
		open: func(ctx context.Context) (io.ReadCloser, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("Accept", "text/csv")

			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				resp.Body.Close()
				return nil, fmt.Errorf("unexpected status %s", resp.Status)
			}
			return resp.Body, nil
		},
	}
}
