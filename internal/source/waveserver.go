package source

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultWaveServerTimeout = 10 * time.Second
	menuRequestID            = "GC"
	// pin sta cha net loc start end datatype
	menuFieldsPerEntry = 8
)

// WaveServer lists channels from an Earthworm or Winston wave server using the
// text "MENU" request. Params: host:port[:timeoutMs].
type WaveServer struct {
	name    string
	raw     string
	addr    string
	timeout time.Duration

	dial func(ctx context.Context, network, address string) (net.Conn, error)
}

// NewWaveServer builds a WaveServer from a parsed spec.
func NewWaveServer(spec Spec) (*WaveServer, error) {
	host := spec.Param(0, "")
	if host == "" {
		return nil, fmt.Errorf("source %s: missing host", spec.Name)
	}
	port, err := strconv.Atoi(spec.Param(1, "16022"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("source %s: invalid port %q", spec.Name, spec.Param(1, ""))
	}
	timeout := defaultWaveServerTimeout
	if ms := spec.Param(2, ""); ms != "" {
		v, err := strconv.Atoi(ms)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("source %s: invalid timeout %q", spec.Name, ms)
		}
		timeout = time.Duration(v) * time.Millisecond
	}

	d := &net.Dialer{Timeout: timeout}
	return &WaveServer{
		name:    spec.Name,
		raw:     spec.Raw,
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		timeout: timeout,
		dial:    d.DialContext,
	}, nil
}

func (w *WaveServer) Name() string         { return w.name }
func (w *WaveServer) ConfigString() string { return w.raw }

// Establish opens a TCP connection for one listing.
func (w *WaveServer) Establish(ctx context.Context) (Session, error) {
	conn, err := w.dial(ctx, "tcp", w.addr)
	if err != nil {
		return nil, err
	}
	return &menuSession{conn: conn, timeout: w.timeout}, nil
}

type menuSession struct {
	conn    net.Conn
	timeout time.Duration
}

// Channels sends "MENU: GC SCNL" and parses the single-line reply.
func (s *menuSession) Channels(ctx context.Context) ([]string, error) {
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintf(s.conn, "MENU: %s SCNL\n", menuRequestID); err != nil {
		return nil, fmt.Errorf("send menu request: %w", err)
	}
	line, err := bufio.NewReader(s.conn).ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read menu reply: %w", err)
	}
	return parseMenu(line)
}

func (s *menuSession) Close() error { return s.conn.Close() }

// parseMenu parses "GC pin sta cha net loc start end type pin ..." into sorted, unique channel names.
func parseMenu(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != menuRequestID {
		return nil, fmt.Errorf("unexpected menu reply %q", strings.TrimSpace(line))
	}
	fields = fields[1:]
	if len(fields)%menuFieldsPerEntry != 0 {
		return nil, fmt.Errorf("truncated menu reply: %d fields", len(fields))
	}

	seen := make(map[string]bool)
	channels := make([]string, 0, len(fields)/menuFieldsPerEntry)
	for i := 0; i < len(fields); i += menuFieldsPerEntry {
		ch := FormatChannel(fields[i+1], fields[i+2], fields[i+3], fields[i+4])
		if !seen[ch] {
			seen[ch] = true
			channels = append(channels, ch)
		}
	}
	sort.Strings(channels)
	return channels, nil
}
