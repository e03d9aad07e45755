// Package printer adapts the receipt output ports: a raw-socket thermal
// printer for the command stream and a directory of text files as the
// always-on fallback.
package printer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/tokogrand/pos-register/internal/adapters/config"
	"github.com/tokogrand/pos-register/internal/core/port"
)

// SocketPrinter sends raw command streams to a network thermal printer,
// the usual port-9100 style device. Each print dials a fresh connection;
// receipt volume on a single register does not warrant pooling.
type SocketPrinter struct {
	address     string
	dialTimeout time.Duration
	enabled     bool
}

func NewSocketPrinter(cfg config.PrinterConfig) port.PrinterPort {
	return &SocketPrinter{
		address:     cfg.Address,
		dialTimeout: cfg.DialTimeout,
		enabled:     cfg.Enabled && cfg.Address != "",
	}
}

func (p *SocketPrinter) Available() bool {
	return p.enabled
}

func (p *SocketPrinter) Print(ctx context.Context, docName string, raw []byte) error {
	dialer := net.Dialer{Timeout: p.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return fmt.Errorf("printer dial %s: %w", p.address, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}

	if _, err := conn.Write(raw); err != nil {
		return fmt.Errorf("printer write %q: %w", docName, err)
	}
	return nil
}
