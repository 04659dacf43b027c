package models

import (
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
)

// CartLine is one distinct medication entry with an aggregated quantity.
// The medication is copied in so totals and receipts never reach back into
// the catalog; Prescription is the snapshot captured when the line was
// first added (nil for over-the-counter items).
type CartLine struct {
	Medication   MedicationItem `json:"medication"`
	Quantity     int64          `json:"quantity"`
	Prescription *Prescription  `json:"prescription,omitempty"`
}

func (l *CartLine) Total() int64 {
	return l.Medication.Price * l.Quantity
}

// Cart is an ordered sequence of lines; insertion order only matters for
// display. Every mutation is all-or-nothing: a failed operation leaves the
// cart exactly as it was.
type Cart struct {
	Lines []*CartLine `json:"lines"`
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(medicationID int64) *CartLine {
	for _, line := range c.Lines {
		if line.Medication.ID == medicationID {
			return line
		}
	}

	return nil
}

// AddItem accumulates quantity onto an existing line or appends a new one.
// Regulated items need an active prescription up front; the snapshot is
// stamped only when the line is first created.
func (c *Cart) AddItem(med MedicationItem, activePrescription *Prescription) error {
	if med.RequiresRx && activePrescription == nil {
		return errors.PrescriptionRequiredError("This medication requires a prescription. Please enter prescription information first.")
	}

	if med.Stock == 0 {
		return errors.OutOfStockError("This medication is currently out of stock")
	}

	if line := c.find(med.ID); line != nil {
		line.Quantity++

		return nil
	}

	line := &CartLine{Medication: med, Quantity: 1}
	if med.RequiresRx {
		stamped := *activePrescription
		line.Prescription = &stamped
	}

	c.Lines = append(c.Lines, line)

	return nil
}

func (c *Cart) Increment(medicationID int64) error {
	line := c.find(medicationID)
	if line == nil {
		return errors.NotFoundError("Item not found in the cart")
	}

	line.Quantity++

	return nil
}

// Decrement lowers the quantity by one; a quantity-1 line is removed
// entirely rather than lingering at zero.
func (c *Cart) Decrement(medicationID int64) error {
	line := c.find(medicationID)
	if line == nil {
		return errors.NotFoundError("Item not found in the cart")
	}

	if line.Quantity > 1 {
		line.Quantity--

		return nil
	}

	return c.Remove(medicationID)
}

func (c *Cart) Remove(medicationID int64) error {
	for i, line := range c.Lines {
		if line.Medication.ID == medicationID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return nil
		}
	}

	return errors.NotFoundError("Item not found in the cart")
}

func (c *Cart) Subtotal() int64 {
	var subtotal int64

	for _, line := range c.Lines {
		subtotal += line.Total()
	}

	return subtotal
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Snapshot deep-copies the cart so checkout can work on a stable view while
// the session store hands the live cart back to the caller.
func (c *Cart) Snapshot() *Cart {
	snapshot := &Cart{Lines: make([]*CartLine, 0, len(c.Lines))}

	for _, line := range c.Lines {
		copied := *line
		snapshot.Lines = append(snapshot.Lines, &copied)
	}

	return snapshot
}
