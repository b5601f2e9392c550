// Package bilibili queries the live room play-info API and validates its response envelope.
package bilibili

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/log"
	"github.com/bililink-cli/bililink/network"
	"github.com/bililink-cli/bililink/tree"
	"github.com/go-resty/resty/v2"
)

const (
	// BaseURL is the live API host.
	BaseURL = "https://api.live.bilibili.com"

	// PlayInfoPath returns the play urls of a room.
	PlayInfoPath = "/xlive/web-room/v2/index/getRoomPlayInfo"
)

// Client fetches stream descriptors of a room.
type Client struct {
	http *resty.Client
}

// New returns a client for the public API.
func New() *Client {
	return NewWithClient(network.New().SetBaseURL(BaseURL))
}

// NewWithClient wraps an existing resty client. Its base URL must point at the API host.
func NewWithClient(c *resty.Client) *Client {
	return &Client{http: c}
}

// Fetch performs the play-info request for room at quality q and returns the raw stream
// descriptors found at data.playurl_info.playurl.stream.
func (c *Client) Fetch(ctx context.Context, room live.RoomID, q live.Quality) ([]any, error) {
	logger := log.WithField("room", room.String())

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Referer", room.URL()).
		SetQueryParams(map[string]string{
			"room_id":  room.String(),
			"qn":       strconv.Itoa(q.Qn()),
			"protocol": "0,1",
			"format":   "0,1,2",
			"codec":    "0,1",
		}).
		Get(PlayInfoPath)
	if err != nil {
		logger.Errorf("play info request: %v", err)
		return nil, fmt.Errorf("%w: %w", live.ErrNetwork, err)
	}

	logger.Debugf("play info answered %s in %s", resp.Status(), resp.Time())

	return parse(resp.Body())
}

// parse validates the response envelope and extracts the stream array.
func parse(body []byte) ([]any, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", live.ErrResponseFormat, err)
	}

	envelope := tree.Root(root, "$")

	code, err := envelope.Field("code").Number()
	if err != nil {
		return nil, err
	}

	if code != 0 {
		message, _ := envelope.Field("message").Text()
		return nil, &live.APIError{Code: int(code), Message: message}
	}

	data := envelope.Field("data")

	status, err := data.Field("live_status").Number()
	if err != nil {
		return nil, err
	}

	if status == 0 {
		return nil, live.ErrNotLive
	}

	return data.Field("playurl_info").Field("playurl").Field("stream").Array()
}
