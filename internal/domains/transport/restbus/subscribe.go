package restbus

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type subscribeRequest struct {
	Paths      []string `json:"paths"`
	Interfaces []string `json:"interfaces"`
}

type eventMessage struct {
	Event      string         `json:"event"`
	Path       string         `json:"path"`
	Interface  string         `json:"interface"`
	Properties map[string]any `json:"properties"`
}

// SubscribePropertiesChanged opens one /subscribe websocket filtered to
// path and iface. The channel is closed when ctx is done or the socket
// fails.
func (c *Client) SubscribePropertiesChanged(ctx context.Context, path, iface string) (events <-chan entities.PropertiesChanged, err error) {
	wsURL, err := subscribeURL(c.options.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("SubscribePropertiesChanged: %w", err)
	}

	header := http.Header{}
	if c.options.Username != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(c.options.Username + ":" + c.options.Password))
		header.Set("Authorization", "Basic "+credentials)
	}

	conn, response, err := c.dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("SubscribePropertiesChanged: %w: %w", errs.ErrRemoteCall, err)
	}
	defer response.Body.Close()

	if err = conn.SetWriteDeadline(time.Now().Add(constants.WSWriteWait)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("SubscribePropertiesChanged: %w", err)
	}

	if err = conn.WriteJSON(subscribeRequest{
		Paths:      []string{path},
		Interfaces: []string{iface},
	}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("SubscribePropertiesChanged: %w: %w", errs.ErrRemoteCall, err)
	}

	conn.SetPongHandler(func(_ string) error {
		if dErr := conn.SetReadDeadline(time.Now().Add(constants.WSPongWait)); dErr != nil {
			log.Error().Msgf("SubscribePropertiesChanged: set read deadline error: %s", dErr)
		}

		return nil
	})

	out := make(chan entities.PropertiesChanged, constants.WSEventQueueSize)
	go c.keepAlive(ctx, conn)
	go c.read(ctx, conn, path, iface, out)

	return out, nil
}

func (c *Client) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(constants.WSPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// unblocks the reader
			conn.Close()
			return

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(constants.WSWriteWait)); err != nil {
				log.Debug().
					Err(err).
					Msg("keepAlive: ping websocket failed")

				return
			}
		}
	}
}

func (c *Client) read(ctx context.Context, conn *websocket.Conn, path, iface string, out chan<- entities.PropertiesChanged) {
	defer close(out)
	defer conn.Close()

	for {
		var message eventMessage
		if err := conn.ReadJSON(&message); err != nil {
			if ctx.Err() == nil {
				log.Warn().
					Err(err).
					Str("path", path).
					Msg("read: websocket closed")
			}

			return
		}

		event, ok := decodeEvent(message, path, iface)
		if !ok {
			log.Trace().
				Any("message", message).
				Msg("read: skip event")

			continue
		}

		select {
		case out <- event:
		case <-ctx.Done():
			return
		}
	}
}

func decodeEvent(message eventMessage, path, iface string) (event entities.PropertiesChanged, ok bool) {
	if message.Event != constants.RESTEventProperties || message.Path != path || message.Interface != iface {
		return event, false
	}

	return entities.PropertiesChanged{
		Path:      message.Path,
		Interface: message.Interface,
		Changed:   message.Properties,
	}, true
}

// subscribeURL maps the REST endpoint to its websocket URL.
func subscribeURL(endpoint string) (wsURL string, err error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return wsURL, fmt.Errorf("subscribeURL: %w", err)
	}

	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	case "http":
		parsed.Scheme = "ws"
	default:
		return wsURL, fmt.Errorf("subscribeURL: unsupported scheme %q", parsed.Scheme)
	}

	parsed.Path = constants.RESTSubscribePath
	return parsed.String(), nil
}
