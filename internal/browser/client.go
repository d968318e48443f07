package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the debug endpoint most hosts listen on.
const DefaultEndpoint = "http://127.0.0.1:9222"

// ErrPrivileged is returned when the host refuses to drive a privileged page
// (internal settings pages, the web store, and similar). Callers are expected
// to log and swallow it.
var ErrPrivileged = errors.New("host refused action on privileged page")

// Client speaks the host's JSON debug protocol over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a client for the given endpoint. An empty endpoint uses
// DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

type tabJSON struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Status  string `json:"status"`
	Active  bool   `json:"active"`
	Crashed bool   `json:"crashed"`
}

// List fetches the current tab set.
func (c *Client) List(ctx context.Context) (Snapshot, error) {
	var raw []tabJSON
	if err := c.get(ctx, "/json/list", &raw); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{Taken: time.Now(), Tabs: make([]Tab, 0, len(raw))}
	for _, entry := range raw {
		tab := Tab{
			ID:      entry.ID,
			Title:   entry.Title,
			URL:     entry.URL,
			State:   stateFromStatus(entry.Status),
			Active:  entry.Active,
			Crashed: entry.Crashed,
		}
		if tab.Active {
			snap.ActiveID = tab.ID
		}
		snap.Tabs = append(snap.Tabs, tab)
	}
	return snap, nil
}

// Tab fetches the current state of a single tab. The second return value is
// false when the tab no longer exists.
func (c *Client) Tab(ctx context.Context, id int) (Tab, bool, error) {
	snap, err := c.List(ctx)
	if err != nil {
		return Tab{}, false, err
	}
	tab, ok := snap.Find(id)
	return tab, ok, nil
}

// Themes fetches the enabled theme extension identifiers.
func (c *Client) Themes(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.get(ctx, "/json/themes", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Version fetches host build details.
func (c *Client) Version(ctx context.Context) (Version, error) {
	var v Version
	if err := c.get(ctx, "/json/version", &v); err != nil {
		return Version{}, err
	}
	return v, nil
}

// Activate brings the tab to the foreground.
func (c *Client) Activate(ctx context.Context, id int) error {
	return c.command(ctx, fmt.Sprintf("/json/activate/%d", id), nil)
}

// Reload requests a reload of the tab, optionally bypassing the cache.
func (c *Client) Reload(ctx context.Context, id int, bypassCache bool) error {
	params := url.Values{}
	if bypassCache {
		params.Set("ignoreCache", "true")
	}
	return c.command(ctx, fmt.Sprintf("/json/reload/%d", id), params)
}

// Stop aborts the tab's in-flight navigation. Privileged pages yield
// ErrPrivileged.
func (c *Client) Stop(ctx context.Context, id int) error {
	return c.command(ctx, fmt.Sprintf("/json/stop/%d", id), nil)
}

// ClearCache asks the host to drop its cache for the tab's origin. The cache
// semantics live entirely in the host.
func (c *Client) ClearCache(ctx context.Context, id int) error {
	return c.command(ctx, fmt.Sprintf("/json/clear_cache/%d", id), nil)
}

// Close closes the tab.
func (c *Client) Close(ctx context.Context, id int) error {
	return c.command(ctx, fmt.Sprintf("/json/close/%d", id), nil)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("host request %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusError(path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) command(ctx context.Context, path string, params url.Values) error {
	target := c.endpoint + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("host command %s: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode == http.StatusForbidden {
		return ErrPrivileged
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(path, resp)
	}
	return nil
}

func statusError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("host %s: %s", path, msg)
}

func stateFromStatus(status string) LoadState {
	if strings.EqualFold(status, "loading") {
		return StateLoading
	}
	return StateIdle
}
