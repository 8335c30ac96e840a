package billing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryLog collects appended receipts; fail makes every append error.
type memoryLog struct {
	receipts []string
	fail     bool
}

func (l *memoryLog) AppendReceipt(ctx context.Context, receipt string) error {
	if l.fail {
		return errors.New("disk full")
	}
	l.receipts = append(l.receipts, receipt)
	return nil
}

var (
	milk  = models.Item{ID: "m1", Name: "Milk", Price: 2.5}
	bread = models.Item{ID: "b1", Name: "Bread", Price: 1.0}
)

func TestComposerTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.BillLine
		want  float64
	}{
		{"no lines", nil, 0},
		{"single line", []models.BillLine{{Item: milk, Quantity: 2}}, 5.0},
		{
			"two lines",
			[]models.BillLine{{Item: milk, Quantity: 2}, {Item: bread, Quantity: 1}},
			6.0,
		},
		{
			"repeated item",
			[]models.BillLine{{Item: bread, Quantity: 3}, {Item: bread, Quantity: 1}},
			4.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer("bob", &memoryLog{}, testLogger())
			for _, line := range tt.lines {
				if err := c.AddLine(line.Item, line.Quantity); err != nil {
					t.Fatalf("AddLine failed: %v", err)
				}
			}
			if got := c.Total(); got != tt.want {
				t.Errorf("Total = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposerGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("receipt carries lines, amounts and total", func(t *testing.T) {
		log := &memoryLog{}
		c := NewComposer("bob", log, testLogger())
		if err := c.AddLine(milk, 2); err != nil {
			t.Fatal(err)
		}
		if err := c.AddLine(bread, 1); err != nil {
			t.Fatal(err)
		}

		bill, receipt, err := c.Generate(ctx)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if bill.Total != 6.0 {
			t.Errorf("Total = %v, want 6.0", bill.Total)
		}
		if bill.ID == "" {
			t.Error("bill ID is empty")
		}
		if bill.Seller != "bob" {
			t.Errorf("Seller = %q, want %q", bill.Seller, "bob")
		}
		for _, want := range []string{
			BillIDPrefix + bill.ID,
			"Seller:  bob",
			"5.00", // Milk x2 line amount
			"1.00", // Bread x1 line amount
			"TOTAL AMOUNT:  PKR 6.00",
		} {
			if !strings.Contains(receipt, want) {
				t.Errorf("receipt missing %q:\n%s", want, receipt)
			}
		}
		if !strings.HasSuffix(receipt, "\n\n") {
			t.Error("receipt block does not end with a blank line separator")
		}

		if len(log.receipts) != 1 || log.receipts[0] != receipt {
			t.Error("receipt was not appended to the bill log")
		}
		if len(c.Lines()) != 0 {
			t.Error("composer not cleared after Generate")
		}
	})

	t.Run("empty composer is refused", func(t *testing.T) {
		log := &memoryLog{}
		c := NewComposer("bob", log, testLogger())
		if _, _, err := c.Generate(ctx); !errors.Is(err, ErrEmptyBill) {
			t.Errorf("Generate = %v, want ErrEmptyBill", err)
		}
		if len(log.receipts) != 0 {
			t.Error("empty generation appended to the bill log")
		}
	})

	t.Run("failed append keeps the lines", func(t *testing.T) {
		c := NewComposer("bob", &memoryLog{fail: true}, testLogger())
		if err := c.AddLine(milk, 1); err != nil {
			t.Fatal(err)
		}
		if _, _, err := c.Generate(ctx); err == nil {
			t.Fatal("Generate succeeded with a failing log")
		}
		if len(c.Lines()) != 1 {
			t.Error("lines lost after failed Generate")
		}
	})

	t.Run("consecutive bills get distinct IDs", func(t *testing.T) {
		log := &memoryLog{}
		c := NewComposer("bob", log, testLogger())
		ids := make(map[string]bool)
		for range 5 {
			if err := c.AddLine(bread, 1); err != nil {
				t.Fatal(err)
			}
			bill, _, err := c.Generate(ctx)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			ids[bill.ID] = true
		}
		if len(ids) != 5 {
			t.Errorf("got %d distinct IDs out of 5", len(ids))
		}
	})
}

func TestComposerAddLineAndClear(t *testing.T) {
	c := NewComposer("bob", &memoryLog{}, testLogger())

	for _, quantity := range []int{0, -1} {
		if err := c.AddLine(milk, quantity); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("AddLine(quantity=%d) = %v, want ErrInvalidQuantity", quantity, err)
		}
	}

	if err := c.AddLine(milk, 1); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	if len(c.Lines()) != 0 || c.Total() != 0 {
		t.Error("Clear left lines behind")
	}
}

func TestComposerPreview(t *testing.T) {
	c := NewComposer("bob", &memoryLog{}, testLogger())

	if got := c.Preview(); !strings.Contains(got, "Add items to start a new bill") {
		t.Errorf("empty preview = %q", got)
	}

	if err := c.AddLine(milk, 2); err != nil {
		t.Fatal(err)
	}
	preview := c.Preview()
	for _, want := range []string{"Milk", "5.00", "Total: PKR 5.00"} {
		if !strings.Contains(preview, want) {
			t.Errorf("preview missing %q:\n%s", want, preview)
		}
	}
}
