package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/revilo196/oscquery-go/pkg/model"
	"github.com/revilo196/oscquery-go/pkg/version"
)

// Client fetches namespace nodes from a remote OSCQuery host.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) get(path, attribute string) ([]byte, error) {
	url := c.base + path
	if attribute != "" {
		url += "?" + attribute
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.UserAgent())

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return io.ReadAll(res.Body)
	case http.StatusNoContent:
		return nil, fmt.Errorf("attribute %s not supported by host", attribute)
	case http.StatusNotFound:
		return nil, fmt.Errorf("no such address: %s", path)
	default:
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
}

// Node fetches and decodes the node at the given address.
func (c *Client) Node(path string) (*model.Node, error) {
	data, err := c.get(path, "")
	if err != nil {
		return nil, err
	}
	var node model.Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode node: %w", err)
	}
	return &node, nil
}

// Raw fetches the raw JSON reply for an address and optional attribute.
func (c *Client) Raw(path, attribute string) ([]byte, error) {
	return c.get(path, attribute)
}

// HostInfo fetches and decodes the HOST_INFO descriptor.
func (c *Client) HostInfo() (*model.HostInfo, error) {
	data, err := c.get("/", "HOST_INFO")
	if err != nil {
		return nil, err
	}
	var info model.HostInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to decode HOST_INFO: %w", err)
	}
	return &info, nil
}
