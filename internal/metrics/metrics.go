package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesSent counts messages successfully delivered, by sink name.
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devsink_messages_sent_total",
		Help: "Messages successfully delivered, by sink.",
	}, []string{"sink"})

	// SendErrors counts delivery failures, by sink name.
	SendErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devsink_send_errors_total",
		Help: "Message delivery failures, by sink.",
	}, []string{"sink"})

	// MessagesTruncated counts messages cut to fit the configured size cap.
	MessagesTruncated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devsink_messages_truncated_total",
		Help: "Messages truncated to fit the configured maximum length, by transport.",
	}, []string{"transport"})

	// BytesSent counts payload bytes written to the syslog transport.
	BytesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devsink_transport_bytes_total",
		Help: "Payload bytes written to the syslog transport.",
	})
)
