//go:build unit

package builder

import (
	"time"

	"hotel-reservation/internal/domain/session"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
)

type UserBuilder struct {
	Name  string
	Email string
	Phone string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Alice Tan",
		Email: "alice@example.com",
		Phone: "+60 12-345 6789",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Name, u.Email, u.Phone)
}

// MustBuildDomain panics on invalid input; use it only with valid fixtures.
func (u *UserBuilder) MustBuildDomain() user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return *usr
}

func (u *UserBuilder) BuildSession(startedAt time.Time) session.Session {
	return session.Start(u.MustBuildDomain(), startedAt)
}

func (u *UserBuilder) BuildStartSessionRequestDTO() request.StartSessionRequest {
	return request.StartSessionRequest{
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func (u *UserBuilder) BuildStartSessionCommand() commands.StartSessionRequest {
	return commands.StartSessionRequest{
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func (u *UserBuilder) BuildGuestView() queries.GuestView {
	return queries.GuestView{
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) Anonymous() *UserBuilder {
	u.Email = ""
	u.Phone = ""
	return u
}
