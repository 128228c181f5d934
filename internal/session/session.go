package session

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"atrack-svr/internal/codec"
	"atrack-svr/internal/observability"
)

// RecordSink receives decoded report records. Implementations must be safe
// for concurrent use; errors stay inside the sink.
type RecordSink interface {
	WriteRecord(deviceID uint64, ts int64, values []codec.DecodedValue)
}

type Config struct {
	LivenessTimeout  time.Duration // close the connection after this much silence
	LivenessInterval time.Duration // how often the silence is checked
	FormatGrace      time.Duration // delay before the first format queries
	FormatRetry      time.Duration // re-query interval until resolved
	DeviceIDWait     time.Duration // GetDeviceID ceiling
	BaseFields       []string
}

func (c *Config) applyDefaults() {
	if c.LivenessTimeout <= 0 {
		c.LivenessTimeout = 60 * time.Second
	}
	if c.LivenessInterval <= 0 {
		c.LivenessInterval = c.LivenessTimeout
	}
	if c.FormatGrace <= 0 {
		c.FormatGrace = 5 * time.Second
	}
	if c.FormatRetry <= 0 {
		c.FormatRetry = 30 * time.Second
	}
	if c.DeviceIDWait <= 0 {
		c.DeviceIDWait = 60 * time.Second
	}
}

type reportMode int

const (
	reportModeUnknown reportMode = iota
	reportModeASCII
	reportModeBinary
)

// Session owns one device connection: it classifies inbound frames, drives
// format negotiation, tracks liveness, acknowledges frames and routes
// report and picture payloads. Frames are processed in arrival order; the
// mutex only guards against the session's own timers.
type Session struct {
	conn     net.Conn
	cfg      Config
	catalog  *codec.Catalog
	records  RecordSink
	pictures PictureStore
	log      *slog.Logger

	mu       sync.Mutex
	deviceID uint64
	hasID    bool
	seq      uint16
	hasSeq   bool
	lastSeen time.Time
	mode     reportMode
	format   *FormatState
	transfer *PictureTransfer

	idReady  chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func New(conn net.Conn, cfg Config, catalog *codec.Catalog, records RecordSink, pictures PictureStore, lg *slog.Logger) *Session {
	cfg.applyDefaults()
	return &Session{
		conn:     conn,
		cfg:      cfg,
		catalog:  catalog,
		records:  records,
		pictures: pictures,
		log:      lg.With("component", "session", "remote", conn.RemoteAddr().String()),
		lastSeen: time.Now(),
		format:   NewFormatState(cfg.BaseFields),
		idReady:  make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the liveness and format-negotiation timers.
func (s *Session) Start() {
	go s.livenessLoop()
	go s.negotiateLoop()
}

// Shutdown cancels both timers. Idempotent.
func (s *Session) Shutdown() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Close shuts the timers down and closes the underlying connection.
func (s *Session) Close() {
	s.Shutdown()
	_ = s.conn.Close()
}

/* =======================================================================
                          FRAME CLASSIFICATION
======================================================================= */

// OnBytesReceived classifies one inbound frame by its first two bytes and
// routes it. Every classified frame refreshes liveness and is acknowledged
// once device id and sequence are known.
func (s *Session) OnBytesReceived(frame []byte) {
	switch {
	case len(frame) == 12 && frame[0] == 0xFE && frame[1] == 0x02:
		observability.FramesReceived.WithLabelValues("keepalive").Inc()
		s.handleKeepAlive(frame)
	case len(frame) >= 2 && frame[0] == '@' && frame[1] == 'P':
		observability.FramesReceived.WithLabelValues("report").Inc()
		s.handleReport(frame)
	case len(frame) >= 2 && frame[0] == '@' && frame[1] == 'R':
		observability.FramesReceived.WithLabelValues("picture").Inc()
		s.handlePicture(frame)
	default:
		observability.FramesReceived.WithLabelValues("other").Inc()
		s.handleOther(frame)
	}

	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
	s.sendAck()
}

func (s *Session) handleKeepAlive(frame []byte) {
	s.setDeviceID(binary.BigEndian.Uint64(frame[2:10]))
	s.setSequence(binary.BigEndian.Uint16(frame[10:12]))
}

func (s *Session) handleReport(frame []byte) {
	start := time.Now()
	defer observability.ObserveDecodeLatency(start)

	s.mu.Lock()
	if s.mode == reportModeUnknown && len(frame) > 2 {
		if frame[2] == ',' {
			s.mode = reportModeASCII
		} else {
			s.mode = reportModeBinary
		}
	}
	mode := s.mode
	s.mu.Unlock()

	if mode != reportModeASCII {
		// Binary report decoding is not implemented; count and drop.
		observability.ReportsDropped.WithLabelValues("binary").Inc()
		s.log.Debug("binary report dropped", "len", len(frame))
		return
	}
	s.handleReportASCII(frame)
}

// handleReportASCII consumes the comma-delimited header at offset 3 (crc,
// length, sequence, device id) and decodes each CRLF body line positionally
// against the negotiated field sequence. CRC and length are carried but not
// verified.
func (s *Session) handleReportASCII(frame []byte) {
	if len(frame) < 4 {
		observability.ReportsDropped.WithLabelValues("malformed").Inc()
		return
	}
	parts := strings.SplitN(string(frame[3:]), ",", 5)
	if len(parts) < 5 {
		observability.ReportsDropped.WithLabelValues("malformed").Inc()
		s.log.Warn("short report header", "fields", len(parts))
		return
	}

	if seq, err := strconv.ParseUint(parts[2], 10, 16); err == nil {
		s.setSequence(uint16(seq))
	}
	if id, err := strconv.ParseUint(parts[3], 10, 64); err == nil {
		s.setDeviceID(id)
	}

	s.mu.Lock()
	resolved := s.format.Resolved()
	fields := s.format.EffectiveFields()
	id, hasID := s.deviceID, s.hasID
	s.mu.Unlock()

	if !resolved || !hasID {
		// Reports before format resolution are dropped, never buffered.
		observability.ReportsDropped.WithLabelValues("premature").Inc()
		s.log.Debug("report before format resolution, dropped")
		return
	}

	for _, line := range strings.Split(parts[4], "\r\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		values := s.catalog.ExtractFields(strings.Split(line, ","), fields, 0)
		if values == nil {
			continue
		}
		observability.ReportsDecoded.Inc()
		s.records.WriteRecord(id, time.Now().UnixNano(), values)
	}
}

func (s *Session) handlePicture(frame []byte) {
	if !checkFrame(frame) {
		s.log.Warn("invalid picture frame dropped", "len", len(frame))
		return
	}
	pkt, err := parsePicturePacket(frame)
	if err != nil {
		s.log.Warn("malformed picture packet", "err", err)
		return
	}

	s.mu.Lock()
	if s.transfer == nil {
		s.transfer = newPictureTransfer(s.deviceID, pkt)
	} else {
		s.transfer.apply(pkt)
	}
	tr := s.transfer
	if !tr.Done() {
		s.mu.Unlock()
		return
	}
	s.transfer = nil
	s.mu.Unlock()

	observability.PicturesCompleted.Inc()
	s.log.Info("picture complete", "device", tr.DeviceID, "rtc", tr.RTC, "bytes", len(tr.Data), "packages", tr.TotalCount)
	go func() {
		if err := s.pictures.StorePicture(tr.DeviceID, tr.RTC, tr.Data); err != nil {
			s.log.Error("picture store failed", "device", tr.DeviceID, "err", err)
		}
	}()
}

// handleOther treats unclassified frames as ASCII command-response text:
// CRLF-split, each non-blank line with '=' is a candidate, and lines whose
// command token matches a format query feed the negotiation.
func (s *Session) handleOther(frame []byte) {
	s.mu.Lock()
	binaryMode := s.mode == reportModeBinary
	s.mu.Unlock()
	if binaryMode {
		return
	}

	for _, line := range strings.Split(string(frame), "\r\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "=") {
			continue
		}
		token, args, _ := strings.Cut(line, "=")

		s.mu.Lock()
		completed := s.format.Record(token, args)
		fields := s.format.EffectiveFields()
		s.mu.Unlock()

		if completed {
			observability.FormatsResolved.Inc()
			s.log.Info("report format resolved", "fields", fields)
		}
	}
}

// checkFrame is where CRC / length / device-id cross-checks would go. The
// devices in the field populate these inconsistently, so nothing is
// verified yet.
func checkFrame(frame []byte) bool {
	return true
}

/* =======================================================================
                       IDENTITY, SEQUENCE AND ACK
======================================================================= */

func (s *Session) setDeviceID(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasID || id == 0 {
		return
	}
	s.deviceID = id
	s.hasID = true
	close(s.idReady)
}

func (s *Session) setSequence(seq uint16) {
	s.mu.Lock()
	s.seq = seq
	s.hasSeq = true
	s.mu.Unlock()
}

// GetDeviceID returns the device identifier, waiting until it arrives via
// a keep-alive or a report header. Resolves to unknown after the configured
// ceiling so the registry never blocks on a misbehaving device.
func (s *Session) GetDeviceID(ctx context.Context) (uint64, bool) {
	select {
	case <-s.idReady:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.deviceID, true
	default:
	}

	timer := time.NewTimer(s.cfg.DeviceIDWait)
	defer timer.Stop()
	select {
	case <-s.idReady:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.deviceID, true
	case <-timer.C:
		return 0, false
	case <-ctx.Done():
		return 0, false
	case <-s.done:
		return 0, false
	}
}

// sendAck emits the 12-byte acknowledgment (marker, device id, sequence),
// hex-encoded on the wire. Nothing is sent while either value is unknown.
func (s *Session) sendAck() {
	s.mu.Lock()
	if !s.hasID || !s.hasSeq {
		s.mu.Unlock()
		return
	}
	var buf [12]byte
	buf[0], buf[1] = 0xFE, 0x02
	binary.BigEndian.PutUint64(buf[2:10], s.deviceID)
	binary.BigEndian.PutUint16(buf[10:12], s.seq)
	s.mu.Unlock()

	if _, err := s.conn.Write([]byte(hex.EncodeToString(buf[:]))); err != nil {
		s.log.Warn("ack write failed", "err", err)
		return
	}
	observability.AcksSent.Inc()
}

// SendCommand writes one ASCII command to the device, CRLF terminated.
func (s *Session) SendCommand(cmd string) error {
	_, err := s.conn.Write([]byte(cmd + "\r\n"))
	return err
}

/* =======================================================================
                                TIMERS
======================================================================= */

func (s *Session) livenessLoop() {
	ticker := time.NewTicker(s.cfg.LivenessInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.CheckLiveness()
		case <-s.done:
			return
		}
	}
}

// CheckLiveness closes the connection when the device has been silent for
// the configured threshold. The only engine-fatal condition.
func (s *Session) CheckLiveness() {
	s.mu.Lock()
	elapsed := time.Since(s.lastSeen)
	s.mu.Unlock()
	if elapsed >= s.cfg.LivenessTimeout {
		observability.LivenessTimeouts.Inc()
		s.log.Info("liveness timeout, closing", "silent", elapsed.Round(time.Second))
		s.Close()
	}
}

// negotiateLoop queries the still-unknown customizations after a short
// grace delay and keeps retrying until all three resolve.
func (s *Session) negotiateLoop() {
	grace := time.NewTimer(s.cfg.FormatGrace)
	defer grace.Stop()
	select {
	case <-grace.C:
	case <-s.done:
		return
	}

	ticker := time.NewTicker(s.cfg.FormatRetry)
	defer ticker.Stop()
	for {
		s.mu.Lock()
		resolved := s.format.Resolved()
		pending := s.format.Pending()
		s.mu.Unlock()
		if resolved {
			return
		}
		for _, cmd := range pending {
			if err := s.SendCommand(cmd + "=?"); err != nil {
				s.log.Warn("format query failed", "cmd", cmd, "err", err)
			}
		}
		select {
		case <-ticker.C:
		case <-s.done:
			return
		}
	}
}
