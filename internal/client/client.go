package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"shortlinks/internal/model"
)

const aliasPath = "/alias"

// Client translates between the workflow's domain shape and the shortening
// service's wire shape.
type Client struct {
	http *resty.Client
}

// New builds a Client for the given base URL. Requests exceeding the
// timeout surface as a RemoteError.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// CreateShortLink asks the service to shorten originalURL and maps the
// response into a LinkRecord.
func (c *Client) CreateShortLink(ctx context.Context, originalURL string) (*model.LinkRecord, error) {
	var aliasResp model.AliasResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(model.AliasRequest{URL: originalURL}).
		SetResult(&aliasResp).
		Post(aliasPath)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}

	if !resp.IsSuccess() {
		return nil, remoteFromResponse(resp)
	}

	rec := aliasResp.Record()
	log.Info().Str("alias", rec.ID).Msg("Short link created")
	return &rec, nil
}

// FetchShortLink looks up an alias by id. A missing id reports ErrNotFound;
// every other failure is a RemoteError.
func (c *Client) FetchShortLink(ctx context.Context, id string) (*model.LinkRecord, error) {
	var aliasResp model.AliasResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&aliasResp).
		Get(aliasPath + "/" + id)
	if err != nil {
		return nil, &RemoteError{Message: err.Error()}
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("alias %s: %w", id, ErrNotFound)
	}

	if !resp.IsSuccess() {
		return nil, remoteFromResponse(resp)
	}

	rec := aliasResp.Record()
	return &rec, nil
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// remoteFromResponse builds a RemoteError from a non-2xx response, keeping
// the server's message when it sent one.
func remoteFromResponse(resp *resty.Response) *RemoteError {
	msg := resp.Status()

	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		switch {
		case body.Message != "":
			msg = body.Message
		case body.Error != "":
			msg = body.Error
		}
	}

	return &RemoteError{StatusCode: resp.StatusCode(), Message: msg}
}
