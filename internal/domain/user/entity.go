package user

import (
	"strings"

	"github.com/google/uuid"
)

// User participates in the booking flow only as the optional owner of a
// booking; account management lives outside this service.
type User struct {
	id        uuid.UUID
	email     Email
	fullName  string
	avatarURL *string
	phone     *string
}

func NewUser(id uuid.UUID, email Email, fullName string, avatarURL, phone *string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) < 2 || len(fullName) > 100 {
		return nil, ErrInvalidFullName
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &User{
		id:        id,
		email:     email,
		fullName:  fullName,
		avatarURL: avatarURL,
		phone:     phone,
	}, nil
}

func (u *User) ID() uuid.UUID      { return u.id }
func (u *User) Email() Email       { return u.email }
func (u *User) FullName() string   { return u.fullName }
func (u *User) AvatarURL() *string { return u.avatarURL }
func (u *User) Phone() *string     { return u.phone }
