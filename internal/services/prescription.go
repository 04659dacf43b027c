package service

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
)

type PrescriptionService interface {
	Create(ctx context.Context, userID int64, req *models.CreatePrescriptionRequest) (*models.Prescription, error)
	GetActive(ctx context.Context, userID int64) (*models.Prescription, error)
}

type prescriptionService struct {
	sessions  repository.SessionRepository
	sanitizer *bluemonday.Policy
}

func NewPrescriptionService(sessions repository.SessionRepository) PrescriptionService {
	return &prescriptionService{
		sessions:  sessions,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *prescriptionService) clean(v string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(v))
}

// Create installs the prescription as the session's single active slot,
// overwriting whatever was there. Lines already in the cart keep their own
// snapshots.
func (s *prescriptionService) Create(ctx context.Context, userID int64, req *models.CreatePrescriptionRequest) (*models.Prescription, error) {

	prescription := &models.Prescription{
		PatientName:       s.clean(req.PatientName),
		PatientDOB:        s.clean(req.PatientDOB),
		InsuranceProvider: s.clean(req.InsuranceProvider),
		InsuranceID:       s.clean(req.InsuranceID),
		RxNumber:          s.clean(req.RxNumber),
		Physician:         s.clean(req.Physician),
		Refills:           req.Refills,
	}

	if prescription.PatientName == "" || prescription.RxNumber == "" {
		return nil, errors.ValidationError("Please enter at least patient name and prescription number")
	}

	err := s.sessions.Update(ctx, userID, func(state *repository.SessionState) error {
		state.ActivePrescription = prescription

		return nil
	})
	if err != nil {
		return nil, errors.InternalError("Failed to store prescription").WithError(err)
	}

	return prescription, nil
}

func (s *prescriptionService) GetActive(ctx context.Context, userID int64) (*models.Prescription, error) {

	var active *models.Prescription

	err := s.sessions.View(ctx, userID, func(state *repository.SessionState) {
		active = state.ActivePrescription
	})
	if err != nil {
		return nil, errors.InternalError("Failed to read session").WithError(err)
	}

	if active == nil {
		return nil, errors.NotFoundError("No active prescription")
	}

	return active, nil
}
