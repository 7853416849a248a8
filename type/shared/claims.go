package shared

import "github.com/golang-jwt/jwt/v4"

type AdminClaims struct {
	AdminId *string `json:"adminId"`
	jwt.RegisteredClaims
}

func (a *AdminClaims) Valid() error {
	return nil
}
