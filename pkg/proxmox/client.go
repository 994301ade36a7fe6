// Package proxmox reads time series from the Proxmox VE API.
package proxmox

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/client-go/rest"
	"k8s.io/klog/v2"

	"github.com/nightness333/check-proxmox/pkg/parser"
	"github.com/nightness333/check-proxmox/pkg/types"
)

const (
	DefaultPort    = "8006"
	DefaultTimeout = 10 * time.Second

	userAgent     = "check-proxmox"
	tokenScheme   = "PVEAPIToken"
	hourTimeframe = "hour"
	maxErrorBody  = 512
)

// Endpoint identifies the API and the token used to call it.
type Endpoint struct {
	Host      string
	Port      string
	Token     string
	TokenName string
	User      string
}

func (e Endpoint) BaseURL() string {
	port := e.Port
	if port == "" {
		port = DefaultPort
	}
	return "https://" + net.JoinHostPort(e.Host, port) + "/api2/json/"
}

// Authorization is the value of the Authorization header for API token auth.
func (e Endpoint) Authorization() string {
	return fmt.Sprintf("%s=%s!%s=%s", tokenScheme, e.User, e.TokenName, e.Token)
}

// TransportOptions controls TLS verification and the request timeout.
// Insecure skips certificate checks, which suits self-signed cluster certs.
type TransportOptions struct {
	Insecure bool
	CAFile   string
	Timeout  time.Duration
}

type Client struct {
	endpoint Endpoint
	http     *http.Client
}

func NewClient(endpoint Endpoint, opts TransportOptions) (*Client, error) {
	if endpoint.Host == "" {
		return nil, errors.New("proxmox host is empty")
	}
	if opts.Insecure && opts.CAFile != "" {
		return nil, errors.New("a CA file cannot be combined with insecure TLS")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient, err := rest.HTTPClientFor(&rest.Config{
		Host:      endpoint.BaseURL(),
		UserAgent: userAgent,
		Timeout:   timeout,
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: opts.Insecure,
			CAFile:   opts.CAFile,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "build http client")
	}

	return &Client{endpoint: endpoint, http: httpClient}, nil
}

func (c *Client) FetchNodeSeries(ctx context.Context, node string) (*types.Series, error) {
	return c.FetchSeries(ctx, types.ScopeNode, node, "")
}

func (c *Client) FetchContainerSeries(ctx context.Context, containerID, node string) (*types.Series, error) {
	return c.FetchSeries(ctx, types.ScopeContainer, node, containerID)
}

func (c *Client) FetchVMSeries(ctx context.Context, vmID, node string) (*types.Series, error) {
	return c.FetchSeries(ctx, types.ScopeVM, node, vmID)
}

// FetchSeries requests the last hour of rrd samples for one target.
func (c *Client) FetchSeries(ctx context.Context, scope types.Scope, node, id string) (*types.Series, error) {
	target, err := c.seriesURL(scope, node, id)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build rrddata request")
	}
	req.Header.Set("Authorization", c.endpoint.Authorization())
	req.Header.Set("Accept", "application/json")

	klog.V(2).Infof("GET %s", target)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s rrddata for %s", scope, node)
	}
	defer resp.Body.Close()
	klog.V(2).Infof("GET %s: %s", target, resp.Status)

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Errorf("unexpected status %s from %s: %s",
			resp.Status, target, strings.Join(strings.Fields(string(body)), " "))
	}

	return parser.ParseSeries(resp.Body)
}

func (c *Client) seriesURL(scope types.Scope, node, id string) (string, error) {
	if node == "" {
		return "", errors.New("node name is empty")
	}

	path := "nodes/" + url.PathEscape(node) + "/"
	switch scope {
	case types.ScopeNode:
	case types.ScopeVM, types.ScopeContainer:
		if id == "" {
			return "", errors.Errorf("%s id is empty", scope)
		}
		path += scope.Segment() + "/" + url.PathEscape(id) + "/"
	default:
		return "", errors.Errorf("scope %q has no rrddata endpoint", scope)
	}

	return c.endpoint.BaseURL() + path + "rrddata?timeframe=" + hourTimeframe, nil
}
