package domain

import "time"

// Account editor account (accounts table)
type Account struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	Nickname  string    `gorm:"column:nickname;size:100" json:"nickname"`
}

func (Account) TableName() string {
	return "accounts"
}

type AccountResponse struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
}

func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Nickname:  a.Nickname,
		CreatedAt: a.CreatedAt,
	}
}

// SignUpRequest account creation request
type SignUpRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email,max=255"`
	Password string `json:"password" binding:"required" validate:"required,min=6,max=72"`
	Nickname string `json:"nickname" binding:"required" validate:"required,max=100"`
}

// LoginRequest login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResponse token plus the account it belongs to
type LoginResponse struct {
	Account     *AccountResponse `json:"account"`
	AccessToken string           `json:"access_token"`
	ExpiresIn   int              `json:"expires_in"`
}
