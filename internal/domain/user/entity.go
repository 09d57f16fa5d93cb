package user

import (
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

// User is the identity a guest books under. It is a plain value;
// two guests with the same name are not merged.
type User struct {
	name  string
	email Email
	phone Phone
}

func NewUser(name, email, phone string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}

	return &User{
		name:  name,
		email: e,
		phone: p,
	}, nil
}

func (u User) Name() string { return u.name }
func (u User) Email() Email { return u.email }
func (u User) Phone() Phone { return u.phone }
