package emr

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo PatientRepository
	now  func() time.Time
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

var validGenders = map[string]bool{
	"M": true, "F": true, "O": true,
}

func validate(p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.Gender != nil && !validGenders[*p.Gender] {
		return fmt.Errorf("invalid gender: %s", *p.Gender)
	}
	if p.BirthDate != nil && p.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth_date cannot be in the future")
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	if p.MRN == "" {
		p.MRN = fmt.Sprintf("HB-%s", uuid.NewString()[:8])
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetPatientByMRN(ctx context.Context, mrn string) (*Patient, error) {
	return s.repo.GetByMRN(ctx, mrn)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Demographics resolves the gender code and current age for a patient.
// Unknown fields come back zero-valued; callers apply their own defaults.
func (s *Service) Demographics(ctx context.Context, id uuid.UUID) (gender string, age int, err error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", 0, err
	}
	if p.Gender != nil {
		gender = *p.Gender
	}
	return gender, p.AgeAt(s.now()), nil
}
