package emr

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockPatientRepo struct {
	byID  map[uuid.UUID]*Patient
	byMRN map[string]*Patient
	err   error
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{
		byID:  make(map[uuid.UUID]*Patient),
		byMRN: make(map[string]*Patient),
	}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	if m.err != nil {
		return m.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.byID[p.ID] = p
	m.byMRN[p.MRN] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) GetByMRN(_ context.Context, mrn string) (*Patient, error) {
	p, ok := m.byMRN[mrn]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.byID[p.ID]; !ok {
		return ErrNotFound
	}
	m.byID[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, len(out), nil
}

func strPtr(s string) *string { return &s }

func TestCreatePatient_Validation(t *testing.T) {
	svc := NewService(newMockPatientRepo())

	cases := []struct {
		name    string
		patient *Patient
	}{
		{"missing first name", &Patient{LastName: "Doe"}},
		{"missing last name", &Patient{FirstName: "Jane"}},
		{"bad gender", &Patient{FirstName: "Jane", LastName: "Doe", Gender: strPtr("X")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.CreatePatient(context.Background(), tc.patient); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreatePatient_RejectsFutureBirthDate(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	future := time.Now().Add(48 * time.Hour)
	p := &Patient{FirstName: "Jane", LastName: "Doe", BirthDate: &future}
	if err := svc.CreatePatient(context.Background(), p); err == nil {
		t.Error("expected error for future birth date")
	}
}

func TestCreatePatient_GeneratesMRN(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	p := &Patient{FirstName: "Jane", LastName: "Doe"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(p.MRN, "HB-") {
		t.Errorf("MRN = %q, want HB- prefix", p.MRN)
	}

	// An explicit MRN is kept.
	p2 := &Patient{FirstName: "John", LastName: "Doe", MRN: "HB-custom"}
	if err := svc.CreatePatient(context.Background(), p2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.MRN != "HB-custom" {
		t.Errorf("MRN = %q, want HB-custom", p2.MRN)
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		birth *time.Time
		want  int
	}{
		{"unknown", nil, 0},
		{"birthday passed", timePtr(time.Date(1980, 3, 1, 0, 0, 0, 0, time.UTC)), 46},
		{"birthday upcoming", timePtr(time.Date(1980, 11, 1, 0, 0, 0, 0, time.UTC)), 45},
		{"birthday today", timePtr(time.Date(1980, 8, 15, 0, 0, 0, 0, time.UTC)), 46},
		{"born this year", timePtr(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Patient{BirthDate: tt.birth}
			if got := p.AgeAt(now); got != tt.want {
				t.Errorf("AgeAt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestDemographics(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC) }

	birth := time.Date(1970, 1, 10, 0, 0, 0, 0, time.UTC)
	p := &Patient{FirstName: "Jane", LastName: "Doe", Gender: strPtr("F"), BirthDate: &birth}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gender, age, err := svc.Demographics(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gender != "F" {
		t.Errorf("gender = %q, want F", gender)
	}
	if age != 56 {
		t.Errorf("age = %d, want 56", age)
	}
}

func TestDemographics_UnknownFieldsZero(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	p := &Patient{FirstName: "Jane", LastName: "Doe"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gender, age, err := svc.Demographics(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gender != "" || age != 0 {
		t.Errorf("expected zero demographics, got (%q, %d)", gender, age)
	}
}

func TestDemographics_MissingPatient(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	if _, _, err := svc.Demographics(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown patient")
	}
}

func TestUpdatePatient_Missing(t *testing.T) {
	svc := NewService(newMockPatientRepo())
	p := &Patient{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"}
	if err := svc.UpdatePatient(context.Background(), p); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
