package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TCPConnections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atrack_tcp_connections_total",
		Help: "Total TCP connections accepted",
	})
	FramesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atrack_frames_received_total",
		Help: "Frames received by class (keepalive/report/picture/other)",
	}, []string{"class"})
	AcksSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atrack_acks_sent_total",
		Help: "Acknowledgment frames emitted",
	})
	ReportsDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atrack_reports_decoded_total",
		Help: "Report lines decoded into typed fields",
	})
	ReportsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atrack_reports_dropped_total",
		Help: "Report lines dropped by reason (premature/binary/malformed)",
	}, []string{"reason"})
	FormatsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atrack_formats_resolved_total",
		Help: "Report format negotiations resolved",
	})
	PicturesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atrack_pictures_completed_total",
		Help: "Picture transfers fully reassembled",
	})
	LivenessTimeouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atrack_liveness_timeouts_total",
		Help: "Connections closed by liveness timeout",
	})
	SinkErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "atrack_sink_errors_total",
		Help: "Errors writing to downstream sinks (redis/s3/fs/forwarder)",
	}, []string{"sink"})
	DecodeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "atrack_decode_latency_seconds",
		Help:    "Per report frame decode latency",
		Buckets: prometheus.DefBuckets,
	})
)

func ObserveDecodeLatency(start time.Time) {
	DecodeLatency.Observe(time.Since(start).Seconds())
}

func StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	_ = http.ListenAndServe(":"+port, nil)
}
