package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdministrator     Role = "ADMINISTRATOR"
	RoleConcessionsSeller Role = "CONCESSIONS_SELLER"
)

type Shift string

const (
	ShiftMorning Shift = "MORNING"
	ShiftEvening Shift = "EVENING"
	ShiftNight   Shift = "NIGHT"
)

// Staff is a flat employee record carrying a role tag instead of a type
// hierarchy. Weekend applies to administrators only; RestDay applies to
// concessions sellers only.
type Staff struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Age       int
	Nickname  string
	Email     string
	Phone     string
	Password  password
	Role      Role
	Shift     Shift
	Weekend   bool
	RestDay   string
	CreatedAt time.Time
}

// DisplayString renders the staff member for logs and rosters, dispatching
// on the role tag.
func (s *Staff) DisplayString() string {
	switch s.Role {
	case RoleAdministrator:
		schedule := "Weekday"
		if s.Weekend {
			schedule = "Weekend"
		}
		return fmt.Sprintf("Admin (%s): %s", schedule, s.Nickname)
	case RoleConcessionsSeller:
		return fmt.Sprintf("Concessions Seller (rest day %s): %s", s.RestDay, s.Nickname)
	default:
		return s.Nickname
	}
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type StaffRepository interface {
	Create(ctx context.Context, staff *Staff) error
	GetByNickname(ctx context.Context, nickname string) (*Staff, error)
}
