package textfile

import (
	"context"
	"fmt"
	"os"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/storage"
)

var _ storage.BillLog = (*BillLog)(nil)

// BillLog appends rendered receipts to an append-only log file. Receipt
// blocks carry their own trailing blank-line separator, so the log is a
// straight concatenation.
type BillLog struct {
	path string
}

// NewBillLog creates a receipt log on the given path. The file is created
// on first append.
func NewBillLog(path string) *BillLog {
	return &BillLog{path: path}
}

func (l *BillLog) AppendReceipt(ctx context.Context, receipt string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", l.path, err)
	}
	if _, err := f.WriteString(receipt); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("append %s: %w", l.path, err)
	}
	return nil
}
