// Package restbus drives a remote BMC through the bmcweb D-Bus REST API and
// its /subscribe websocket.
package restbus

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/domains/transport"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type Options struct {
	Endpoint string
	Username string
	Password string
	Insecure bool
	Timeout  time.Duration
}

type Client struct {
	client  *resty.Client
	dialer  *websocket.Dialer
	options Options
}

// reply is the bmcweb envelope around every REST answer.
type reply[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func NewClient(options Options) *Client {
	tlsConfig := &tls.Config{InsecureSkipVerify: options.Insecure} //nolint:gosec // BMCs ship self-signed certificates

	client := resty.New().
		SetBaseURL(options.Endpoint).
		SetTimeout(options.Timeout).
		SetTLSClientConfig(tlsConfig).
		SetHeader("Accept", "application/json")

	if options.Username != "" {
		client.SetBasicAuth(options.Username, options.Password)
	}

	return &Client{
		client: client,
		dialer: &websocket.Dialer{
			TLSClientConfig:  tlsConfig,
			HandshakeTimeout: options.Timeout,
		},
		options: options,
	}
}

func (c *Client) Close() (err error) {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

// ResolveService calls the ObjectMapper GetObject method through the REST
// action endpoint.
func (c *Client) ResolveService(ctx context.Context, path, iface string) (service string, err error) {
	var result reply[map[string][]string]
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"data": []any{path, []string{iface}},
		}).
		SetResult(&result).
		Post(fmt.Sprintf(constants.RESTActionPathFmt, constants.ObjectMapperPath, constants.ObjectMapperGetObj))
	if err != nil {
		return service, fmt.Errorf("ResolveService: %w: %w", errs.ErrRemoteCall, err)
	}

	if resp.IsError() {
		return service, fmt.Errorf("ResolveService: %d %s: %w", resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	}

	return transport.FirstService(result.Data), nil
}

// GetProperty reads an attribute. bmcweb routes by object path, the service
// is only checked for presence.
func (c *Client) GetProperty(ctx context.Context, service, path, iface, property string) (value string, err error) {
	var result reply[any]
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf(constants.RESTAttrPathFmt, path, property))
	if err != nil {
		return value, fmt.Errorf("GetProperty: %w: %w", errs.ErrRemoteCall, err)
	}

	if resp.IsError() {
		return value, fmt.Errorf("GetProperty: %s.%s: %d %s: %w", iface, property, resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	}

	value, ok := result.Data.(string)
	if !ok {
		return value, fmt.Errorf("GetProperty: %w: %s is %T", errs.ErrUnexpectedValue, property, result.Data)
	}

	return value, nil
}

func (c *Client) SetProperty(ctx context.Context, service, path, iface, property, value string) (err error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"data": value,
		}).
		Put(fmt.Sprintf(constants.RESTAttrPathFmt, path, property))
	if err != nil {
		return fmt.Errorf("SetProperty: %w: %w", errs.ErrRemoteCall, err)
	}

	if resp.IsError() {
		return fmt.Errorf("SetProperty: %s.%s: %d %s: %w", iface, property, resp.StatusCode(), resp.Status(), errs.ErrAPIError)
	}

	return nil
}
