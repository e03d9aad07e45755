package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// PrinterPort hands a raw command stream to an external print spooler.
// The spooler may be absent on the host; Available reports whether a
// device print should even be attempted.
type PrinterPort interface {
	Available() bool
	Print(ctx context.Context, docName string, raw []byte) error
}

// ReceiptStorePort persists the plain-text receipt rendering. It is the
// durability backstop and is written on every commit, printer or not.
type ReceiptStorePort interface {
	Save(ctx context.Context, transactionID string, body []byte) (string, error)
}
