package user

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name is too long (max 100 characters)")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrPhoneTooLong = errors.New("phone number is too long (max 20 characters)")
)

const MaxPhoneLength = 20

// Email is optional; the zero value means "not given".
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, nil
	}
	// A bare address only; display names and dotless domains are rejected.
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return Email{}, ErrInvalidEmail
	}
	at := strings.LastIndexByte(s, '@')
	if domain := s[at+1:]; !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsEmpty() bool {
	return e.value == ""
}

// Phone is optional free text; the zero value means "not given".
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, nil
	}
	if utf8.RuneCountInString(s) > MaxPhoneLength {
		return Phone{}, ErrPhoneTooLong
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}
