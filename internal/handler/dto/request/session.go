package request

import (
	"strings"

	"hotel-reservation/internal/usecase/commands"
)

type StartSessionRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

func (r StartSessionRequest) ToCommand() commands.StartSessionRequest {
	return commands.StartSessionRequest{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}
