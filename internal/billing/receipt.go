package billing

import (
	"fmt"
	"strings"

	"github.com/hassanmemonexe/OOP-FINAL-PROJECT/internal/models"
)

// BillIDPrefix starts the line that carries the bill ID inside a receipt
// block in bills.txt.
const BillIDPrefix = "Bill ID: "

const receiptRule = "----------------------------------------------------------"
const receiptEdge = "=========================================================="

// renderReceipt produces the fixed-width receipt block persisted to the
// bill log. The block ends with a blank line so consecutive receipts stay
// separated in the file.
func renderReceipt(bill *models.Bill) string {
	var b strings.Builder
	b.WriteString(receiptEdge + "\n")
	b.WriteString("                     SUPERMARKET RECEIPT                  \n")
	b.WriteString(receiptEdge + "\n")
	fmt.Fprintf(&b, "%s%s\n", BillIDPrefix, bill.ID)
	fmt.Fprintf(&b, "Seller:  %s\n", bill.Seller)
	fmt.Fprintf(&b, "Date:    %s\n", bill.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "%-15s %-25s %-5s %-13s %-13s\n",
		"Item ID", "Item Name", "Qty", "Price (PKR)", "Amount (PKR)")
	b.WriteString(receiptRule + "\n")
	for _, line := range bill.Lines {
		fmt.Fprintf(&b, "%-15s %-25.25s %-5d PKR %-10.2f PKR %-10.2f\n",
			line.Item.ID,
			line.Item.Name,
			line.Quantity,
			line.Item.Price,
			line.Subtotal(),
		)
	}
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "%48s PKR %.2f\n", "TOTAL AMOUNT: ", bill.Total)
	b.WriteString(receiptEdge + "\n")
	b.WriteString("                 Thank you for your purchase!             \n")
	b.WriteString(receiptEdge + "\n\n")
	return b.String()
}

// Preview renders the in-progress bill the way the seller screen shows
// it: the current lines plus a running total, or a hint when empty.
func (c *Composer) Preview() string {
	if len(c.lines) == 0 {
		return "<<< Add items to start a new bill >>>\n"
	}
	rule := strings.Repeat("-", 81)
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s %-25s %-13s %-5s %-15s\n",
		"Item ID", "Item Name", "Price(PKR)", "Qty", "Subtotal(PKR)")
	b.WriteString(rule + "\n")
	for _, line := range c.lines {
		fmt.Fprintf(&b, "%-15s %-25.25s PKR %-10.2f %-5d PKR %-12.2f\n",
			line.Item.ID,
			line.Item.Name,
			line.Item.Price,
			line.Quantity,
			line.Subtotal(),
		)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Total: PKR %.2f\n", c.Total())
	return b.String()
}
