package models

// Prescription is the single "active" record held per session. Cart lines
// keep their own copy stamped at add time, so editing the active record
// never rewrites lines already in the cart.
type Prescription struct {
	PatientName       string `json:"patient_name"`
	PatientDOB        string `json:"patient_dob,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsuranceID       string `json:"insurance_id,omitempty"`
	RxNumber          string `json:"rx_number"`
	Physician         string `json:"physician,omitempty"`
	Refills           int    `json:"refills"`
}

type CreatePrescriptionRequest struct {
	PatientName       string `json:"patient_name" validate:"required"`
	PatientDOB        string `json:"patient_dob,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsuranceID       string `json:"insurance_id,omitempty"`
	RxNumber          string `json:"rx_number" validate:"required"`
	Physician         string `json:"physician,omitempty"`
	Refills           int    `json:"refills" validate:"gte=0"`
}
