package pipeline

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"atrack-svr/internal/codec"
	"atrack-svr/internal/grpcclient"
	"atrack-svr/internal/observability"
	"atrack-svr/internal/store"
)

// Processor fans decoded records out to the time-series store and, when
// configured, the gRPC forwarder. Shared by all connections.
type Processor struct {
	forwarder *grpcclient.GRPCClient
	log       *slog.Logger
}

// NewProcessor builds the shared record pipeline. forwarder may be nil.
func NewProcessor(forwarder *grpcclient.GRPCClient, lg *slog.Logger) *Processor {
	return &Processor{forwarder: forwarder, log: lg.With("component", "pipeline")}
}

func (p *Processor) WriteRecord(deviceID uint64, ts int64, values []codec.DecodedValue) {
	store.WriteSeries(deviceID, ts, values)

	if p.forwarder == nil {
		return
	}
	rec := Record{DeviceID: deviceID, Timestamp: ts, Values: values}
	b, err := json.Marshal(rec)
	if err != nil {
		p.log.Error("record marshal failed", "device", deviceID, "err", err)
		return
	}
	go func() {
		if err := p.forwarder.SendData(strconv.FormatUint(deviceID, 10), string(b)); err != nil {
			observability.SinkErrors.WithLabelValues("forwarder").Inc()
			p.log.Warn("forwarder send failed", "device", deviceID, "err", err)
		}
	}()
}
