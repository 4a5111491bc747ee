package emr

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Demographics feed risk assessments:
// gender and birth date resolve the recommendation lookup key.
type Patient struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	MRN           string     `db:"mrn" json:"mrn"`
	Active        bool       `db:"active" json:"active"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Gender        *string    `db:"gender" json:"gender,omitempty"` // "M", "F" or "O"
	BirthDate     *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	TelecomPhone  *string    `db:"telecom_phone" json:"telecom_phone,omitempty"`
	TelecomEmail  *string    `db:"telecom_email" json:"telecom_email,omitempty"`
	AddressLine   *string    `db:"address_line" json:"address_line,omitempty"`
	AddressCity   *string    `db:"address_city" json:"address_city,omitempty"`
	AddressState  *string    `db:"address_state" json:"address_state,omitempty"`
	AddressPostal *string    `db:"address_postal_code" json:"address_postal_code,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// AgeAt returns the patient's age in whole years at the given time, or 0
// when the birth date is unknown.
func (p *Patient) AgeAt(now time.Time) int {
	if p.BirthDate == nil {
		return 0
	}
	bd := *p.BirthDate
	age := now.Year() - bd.Year()
	if now.Month() < bd.Month() || (now.Month() == bd.Month() && now.Day() < bd.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
