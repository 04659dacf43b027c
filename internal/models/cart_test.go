package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	appErrors "github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

var (
	amoxicillin = models.MedicationItem{ID: 1, Name: "Amoxicillin 500mg", Price: 12000, Category: "Antibiotics", RequiresRx: true, Stock: 45}
	ibuprofen   = models.MedicationItem{ID: 4, Name: "Ibuprofen 200mg", Price: 2500, Category: "Pain Relief", RequiresRx: false, Stock: 120}
	vitaminD    = models.MedicationItem{ID: 12, Name: "Vitamin D3 1000IU", Price: 5500, Category: "Supplements", RequiresRx: false, Stock: 84}
)

func testPrescription(rxNumber string) *models.Prescription {
	return &models.Prescription{PatientName: "A", RxNumber: rxNumber, InsuranceProvider: "AcmeIns"}
}

func TestAddItem(t *testing.T) {

	t.Run("Regulated Item Without Prescription Fails And Leaves Cart Unchanged", func(t *testing.T) {
		cart := models.NewCart()
		assert.NoError(t, cart.AddItem(ibuprofen, nil))

		before := cart.Snapshot()

		err := cart.AddItem(amoxicillin, nil)

		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodePrescriptionRequired, appErr.Code)
		assert.Equal(t, before.Lines, cart.Lines)
		assert.Equal(t, before.Subtotal(), cart.Subtotal())
	})

	t.Run("Repeated Adds Accumulate On One Line", func(t *testing.T) {
		cart := models.NewCart()

		assert.NoError(t, cart.AddItem(ibuprofen, nil))
		assert.NoError(t, cart.AddItem(ibuprofen, nil))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(2), cart.Lines[0].Quantity)
	})

	t.Run("Out Of Stock Item Rejected", func(t *testing.T) {
		cart := models.NewCart()
		outOfStock := ibuprofen
		outOfStock.Stock = 0

		err := cart.AddItem(outOfStock, nil)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeOutOfStock, appErr.Code)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Snapshot Stamped At First Add Only", func(t *testing.T) {
		cart := models.NewCart()
		first := testPrescription("R1")

		assert.NoError(t, cart.AddItem(amoxicillin, first))

		// a later prescription does not rewrite the existing line
		second := testPrescription("R2")
		assert.NoError(t, cart.AddItem(amoxicillin, second))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(2), cart.Lines[0].Quantity)
		assert.Equal(t, "R1", cart.Lines[0].Prescription.RxNumber)
	})

	t.Run("Failed Add After Prescription Created Succeeds On Retry", func(t *testing.T) {
		cart := models.NewCart()

		err := cart.AddItem(amoxicillin, nil)
		assert.Error(t, err)
		assert.True(t, cart.IsEmpty())

		rx := testPrescription("R1")
		assert.NoError(t, cart.AddItem(amoxicillin, rx))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, "R1", cart.Lines[0].Prescription.RxNumber)
	})

	t.Run("Snapshot Is A Copy Of The Active Record", func(t *testing.T) {
		cart := models.NewCart()
		rx := testPrescription("R1")

		assert.NoError(t, cart.AddItem(amoxicillin, rx))

		// editing the active record after the add must not reach the line
		rx.RxNumber = "R2"
		rx.InsuranceProvider = "OtherIns"

		assert.Equal(t, "R1", cart.Lines[0].Prescription.RxNumber)
		assert.Equal(t, "AcmeIns", cart.Lines[0].Prescription.InsuranceProvider)
	})

	t.Run("Over The Counter Line Carries No Snapshot", func(t *testing.T) {
		cart := models.NewCart()

		assert.NoError(t, cart.AddItem(ibuprofen, testPrescription("R1")))

		assert.Nil(t, cart.Lines[0].Prescription)
	})
}

func TestQuantityOperations(t *testing.T) {

	t.Run("Decrement Removes Quantity One Line", func(t *testing.T) {
		cart := models.NewCart()
		assert.NoError(t, cart.AddItem(ibuprofen, nil))

		assert.NoError(t, cart.Decrement(ibuprofen.ID))

		assert.True(t, cart.IsEmpty())
	})

	t.Run("Decrement Keeps Line Above One", func(t *testing.T) {
		cart := models.NewCart()
		assert.NoError(t, cart.AddItem(ibuprofen, nil))
		assert.NoError(t, cart.Increment(ibuprofen.ID))
		assert.NoError(t, cart.Increment(ibuprofen.ID))

		assert.NoError(t, cart.Decrement(ibuprofen.ID))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(2), cart.Lines[0].Quantity)
	})

	t.Run("Increment Missing Line Fails", func(t *testing.T) {
		cart := models.NewCart()

		err := cart.Increment(99)

		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Remove Deletes Line Unconditionally", func(t *testing.T) {
		cart := models.NewCart()
		assert.NoError(t, cart.AddItem(ibuprofen, nil))
		assert.NoError(t, cart.AddItem(vitaminD, nil))
		assert.NoError(t, cart.Increment(ibuprofen.ID))

		assert.NoError(t, cart.Remove(ibuprofen.ID))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, vitaminD.ID, cart.Lines[0].Medication.ID)
	})
}

func TestSubtotal(t *testing.T) {

	t.Run("Sum Of Price Times Quantity", func(t *testing.T) {
		cart := models.NewCart()
		assert.NoError(t, cart.AddItem(ibuprofen, nil))
		assert.NoError(t, cart.AddItem(ibuprofen, nil))
		assert.NoError(t, cart.AddItem(vitaminD, nil))

		assert.Equal(t, int64(2*2500+5500), cart.Subtotal())
	})

	t.Run("Order Independence Of Final Line Set", func(t *testing.T) {
		// two different operation sequences ending in the same line set
		first := models.NewCart()
		assert.NoError(t, first.AddItem(ibuprofen, nil))
		assert.NoError(t, first.AddItem(vitaminD, nil))
		assert.NoError(t, first.Increment(ibuprofen.ID))

		second := models.NewCart()
		assert.NoError(t, second.AddItem(vitaminD, nil))
		assert.NoError(t, second.AddItem(vitaminD, nil))
		assert.NoError(t, second.AddItem(ibuprofen, nil))
		assert.NoError(t, second.AddItem(ibuprofen, nil))
		assert.NoError(t, second.Decrement(vitaminD.ID))

		assert.Equal(t, first.Subtotal(), second.Subtotal())
	})

	t.Run("Empty Cart Subtotal Is Zero", func(t *testing.T) {
		assert.Equal(t, int64(0), models.NewCart().Subtotal())
	})
}

func TestSnapshotIsolation(t *testing.T) {
	cart := models.NewCart()
	assert.NoError(t, cart.AddItem(ibuprofen, nil))

	snapshot := cart.Snapshot()
	assert.NoError(t, cart.Increment(ibuprofen.ID))

	assert.Equal(t, int64(1), snapshot.Lines[0].Quantity)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
}
