package picacg

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/kbukum/picacg/errors"
	"github.com/kbukum/picacg/httpclient"
)

// ImageURL returns the download URL of img. The image server from the
// restored settings replaces the file server of img when set.
func (c *Client) ImageURL(img Image) (string, error) {
	c.mu.RLock()
	server := c.imageServer
	c.mu.RUnlock()
	if server == "" {
		server = img.FileServer
	}
	if server == "" || img.Path == "" {
		return "", apperrors.Parameter("Image has no file server or path")
	}
	return strings.TrimRight(server, "/") + "/static/" + strings.TrimLeft(img.Path, "/"), nil
}

// Image downloads img. Media servers are not signed; any non-2xx status is
// a BadRequest.
func (c *Client) Image(ctx context.Context, img Image) ([]byte, error) {
	u, err := c.ImageURL(img)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   u,
		Headers: map[string]string{
			"User-Agent": c.cfg.App.UserAgent,
		},
		Expect: httpclient.ExpectBytes,
	})
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, apperrors.Newf(apperrors.KindBadRequest, "Failed to fetch image: status %d", resp.StatusCode).
			WithDetail("url", u)
	}
	return resp.Body.Bytes, nil
}

// SetImageServer overrides the file server used by Image.
func (c *Client) SetImageServer(server string) {
	c.mu.Lock()
	c.imageServer = server
	c.mu.Unlock()
}
