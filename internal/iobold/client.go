// Package iobold talks to the BOLD public API. It downloads sequences
// of taxa per country and fetches specimen data for sequence ids.
package iobold

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gnames/gnbarcode/pkg/config"
	"golang.org/x/text/encoding/charmap"
)

const (
	sequenceEndpoint = "sequence"
	specimenEndpoint = "specimen"
)

// client keeps settings shared by BOLD requests.
type client struct {
	cfg  *config.Config
	http *http.Client
}

func newClient(cfg *config.Config) client {
	return client{cfg: cfg, http: &http.Client{}}
}

// endpointURL builds a URL of a BOLD endpoint with query parameters.
func (c client) endpointURL(endpoint string, q url.Values) string {
	return c.cfg.Download.BaseURL + "/" + endpoint + "?" + q.Encode()
}

// get performs a GET request and returns the body decoded from
// windows-1252, the encoding of BOLD responses. The caller closes the
// body.
func (c client) get(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, BoldRequestError(u, err)
	}
	slog.Debug("BOLD request", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, BoldRequestError(u, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, BoldResponseError(u, resp.StatusCode)
	}
	return decoded{
		Reader: charmap.Windows1252.NewDecoder().Reader(resp.Body),
		body:   resp.Body,
	}, nil
}

type decoded struct {
	io.Reader
	body io.Closer
}

func (d decoded) Close() error {
	return d.body.Close()
}
