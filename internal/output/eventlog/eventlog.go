package eventlog

import (
	"errors"

	"github.com/seralba/devsink/internal/output"
)

// ErrNotSupported is returned by New on platforms without a Windows Event Log.
var ErrNotSupported = errors.New("eventlog: windows event log is not available on this platform")

func init() {
	output.Register("eventlog", func(cfg output.SinkConfig) (output.Output, error) {
		return New(cfg.Setting("source", "devsink"))
	})
}
