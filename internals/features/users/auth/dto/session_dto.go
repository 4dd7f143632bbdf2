package dto

import (
	"strings"

	helperAuth "studyhard_backend/internals/helpers/auth"
)

// IssueTokenRequest: payload POST /jwt.
// Mode terverifikasi cukup mengirim id_token; mode legacy wajib email.
type IssueTokenRequest struct {
	Email   string `json:"email"    validate:"omitempty,email,max=254"`
	Name    string `json:"name"     validate:"omitempty,max=120"`
	Photo   string `json:"photo"    validate:"omitempty,max=2048"`
	IDToken string `json:"id_token" validate:"omitempty"`
}

func (r *IssueTokenRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Photo = strings.TrimSpace(r.Photo)
	r.IDToken = strings.TrimSpace(r.IDToken)
}

func (r IssueTokenRequest) Identity() helperAuth.Identity {
	return helperAuth.Identity{Email: r.Email, Name: r.Name, Photo: r.Photo}
}

type IssueTokenResponse struct {
	Success   bool   `json:"success"`
	ExpiresAt string `json:"expires_at"`
}
