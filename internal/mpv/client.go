package mpv

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"time"

	"github.com/spinapp/spin/internal/core"
)

// Client sends commands to a running mpv process over its JSON IPC socket.
// Every call opens a short-lived connection bounded by the configured
// timeout. The player may be mid-startup or mid-restart at any time, so
// all connection failures are soft: callers get an ok=false result and
// must treat the status as unavailable.
type Client struct {
	socket  string
	timeout time.Duration
}

// NewClient creates a client for the given socket path.
func NewClient(socket string, timeout time.Duration) *Client {
	return &Client{
		socket:  socket,
		timeout: timeout,
	}
}

type request struct {
	Command []any `json:"command"`
}

type response struct {
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
	Event string          `json:"event"`
}

// roundTrip writes one command and reads one reply. Asynchronous event
// lines that mpv may interleave on the socket are skipped.
func (c *Client) roundTrip(cmd ...any) (json.RawMessage, bool) {
	if _, err := os.Stat(c.socket); err != nil {
		return nil, false
	}

	conn, err := net.DialTimeout("unix", c.socket, c.timeout)
	if err != nil {
		return nil, false
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(c.timeout))

	payload, err := json.Marshal(request{Command: cmd})
	if err != nil {
		return nil, false
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, false
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, false
		}
		var resp response
		if err := json.Unmarshal(line, &resp); err != nil {
			return nil, false
		}
		if resp.Event != "" {
			continue
		}
		if resp.Error != "success" {
			return nil, false
		}
		return resp.Data, true
	}
}

// GetFloat queries a numeric property by name.
func (c *Client) GetFloat(prop string) (float64, bool) {
	data, ok := c.roundTrip("get_property", prop)
	if !ok {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, false
	}
	return v, true
}

// Cycle toggles a boolean property such as "pause".
func (c *Client) Cycle(prop string) bool {
	_, ok := c.roundTrip("cycle", prop)
	return ok
}

// SeekRelative seeks by a signed number of seconds.
func (c *Client) SeekRelative(seconds float64) bool {
	_, ok := c.roundTrip("seek", seconds, "relative")
	return ok
}

// Status polls playback progress. Returns (nil, false) while the channel
// is unreachable, which the UI renders as loading.
func (c *Client) Status() (*core.Status, bool) {
	percent, ok := c.GetFloat("percent-pos")
	if !ok {
		return nil, false
	}
	pos, _ := c.GetFloat("time-pos")
	dur, _ := c.GetFloat("duration")
	return &core.Status{
		Percent:  percent,
		Position: pos,
		Duration: dur,
	}, true
}
