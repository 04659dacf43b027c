package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	"github.com/tawonga-banda/pharmacy-pos/internal/receipts"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
)

type CheckoutResult struct {
	Receipt  *models.Receipt `json:"receipt"`
	Rendered string          `json:"rendered"`
}

type OrderService interface {
	Checkout(ctx context.Context, claims *models.Claims) (*CheckoutResult, error)
}

type orderService struct {
	sessions        repository.SessionRepository
	publisher       *receipts.Fanout
	coveragePercent int64
}

func NewOrderService(sessions repository.SessionRepository, publisher *receipts.Fanout, coveragePercent int64) OrderService {
	return &orderService{
		sessions:        sessions,
		publisher:       publisher,
		coveragePercent: coveragePercent,
	}
}

// BuildReceipt validates the cart and computes the receipt value. Pure: it
// mutates nothing, so the session state only changes once it succeeds.
//
// The insurance adjustment keys off the session's active prescription at
// checkout time, not the per-line snapshots; that coupling is the till's
// documented behavior and is kept deliberately.
func BuildReceipt(cart *models.Cart, claims *models.Claims, activePrescription *models.Prescription, now time.Time, coveragePercent int64) (*models.Receipt, error) {

	if cart.IsEmpty() {
		return nil, errors.EmptyCartError("Your cart is empty!")
	}

	// Authoritative gate: AddItem should have stamped every regulated line,
	// but checkout re-validates before any money is computed.
	for _, line := range cart.Lines {
		if line.Medication.RequiresRx && line.Prescription == nil {
			return nil, errors.MissingPrescriptionError("Some prescription medications in your cart are missing prescription information.")
		}
	}

	receipt := &models.Receipt{
		ID:          uuid.New(),
		Timestamp:   now,
		Cashier:     claims.Name,
		CashierRole: claims.Role,
		Subtotal:    cart.Subtotal(),
	}

	for _, line := range cart.Lines {
		row := models.ReceiptRow{
			Name:      line.Medication.Name,
			Quantity:  line.Quantity,
			LineTotal: line.Total(),
		}

		if line.Prescription != nil {
			row.RxNumber = line.Prescription.RxNumber
		}

		receipt.Rows = append(receipt.Rows, row)
	}

	if activePrescription != nil {
		receipt.Patient = &models.PatientInfo{
			Name:              activePrescription.PatientName,
			DOB:               activePrescription.PatientDOB,
			InsuranceProvider: activePrescription.InsuranceProvider,
			InsuranceID:       activePrescription.InsuranceID,
		}

		if activePrescription.InsuranceProvider != "" {
			receipt.InsuranceApplied = true
			receipt.AdjustmentCents = receipt.Subtotal * coveragePercent
			receipt.PatientPaysCents = receipt.Subtotal*100 - receipt.AdjustmentCents
		}
	}

	return receipt, nil
}

// Checkout builds the receipt under the session lock, clears the cart and
// the active prescription on success, then fans the rendered text out to
// the configured sinks. Sink failures are logged, never surfaced.
func (s *orderService) Checkout(ctx context.Context, claims *models.Claims) (*CheckoutResult, error) {

	var result *CheckoutResult

	err := s.sessions.Update(ctx, claims.UserID, func(state *repository.SessionState) error {
		receipt, err := BuildReceipt(state.Cart.Snapshot(), claims, state.ActivePrescription, time.Now(), s.coveragePercent)
		if err != nil {
			return err
		}

		state.Cart.Clear()
		state.ActivePrescription = nil

		result = &CheckoutResult{Receipt: receipt, Rendered: receipt.Render()}

		return nil
	})
	if err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.InternalError("Failed to process order").WithError(err)
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, result.Receipt, result.Rendered)
	}

	return result, nil
}
