package service_test

import (
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
)

var testCatalog = []models.MedicationItem{
	{ID: 1, Name: "Amoxicillin 500mg", Price: 12000, Category: "Antibiotics", RequiresRx: true, Stock: 45},
	{ID: 4, Name: "Ibuprofen 200mg", Price: 2500, Category: "Pain Relief", RequiresRx: false, Stock: 120},
	{ID: 6, Name: "Acetaminophen 500mg", Price: 1800, Category: "Pain Relief", RequiresRx: false, Stock: 95},
	{ID: 7, Name: "Diphenhydramine 25mg", Price: 3500, Category: "Allergy", RequiresRx: false, Stock: 65},
	{ID: 10, Name: "Albuterol Inhaler", Price: 32500, Category: "Asthma", RequiresRx: true, Stock: 0},
	{ID: 12, Name: "Vitamin D3 1000IU", Price: 5500, Category: "Supplements", RequiresRx: false, Stock: 84},
}

var testUsers = []models.User{
	{ID: 1, Username: "pharmacist", Password: "pharma123", Name: "Dr. James Banda", Role: "Pharmacist",
		Permissions: []string{models.PermissionView, models.PermissionEdit, models.PermissionPrescribe, models.PermissionCheckout}},
	{ID: 2, Username: "technician", Password: "tech123", Name: "Mary Phiri", Role: "Technician",
		Permissions: []string{models.PermissionView, models.PermissionCheckout}},
}

func pharmacistClaims() *models.Claims {
	return &models.Claims{
		UserID:      1,
		Username:    "pharmacist",
		Name:        "Dr. James Banda",
		Role:        "Pharmacist",
		Permissions: []string{models.PermissionView, models.PermissionEdit, models.PermissionPrescribe, models.PermissionCheckout},
	}
}

func newCatalogRepo() repository.CatalogRepository {
	return repository.NewCatalogRepo(testCatalog)
}

func activeRx() *models.Prescription {
	return &models.Prescription{
		PatientName:       "Grace Mwale",
		PatientDOB:        "1988-07-02",
		InsuranceProvider: "MASM",
		InsuranceID:       "M-4471",
		RxNumber:          "RX-2031",
		Physician:         "Dr. Chirwa",
		Refills:           2,
	}
}
