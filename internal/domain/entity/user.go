package entity

import "encoding/json"

type User struct {
	ID         int64   `json:"-"`
	Phone      string  `json:"phone"`
	Location   *string `json:"location"`
	IsVerified bool    `json:"-"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
}

// VerifyRequest accepts the code as a JSON number or a numeric string.
type VerifyRequest struct {
	Phone    string      `json:"phone"`
	OTP      json.Number `json:"otp"`
	Location *string     `json:"location"`
}
