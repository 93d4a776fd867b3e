package auth

import (
	"errors"
	"time"

	"github.com/evgo-rent/backend/internal/domain"
	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(actor domain.Actor, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID    int    `json:"user_id"`
	RenterID  int    `json:"renter_id,omitempty"`
	StationID int    `json:"station_id,omitempty"`
	Role      string `json:"role"`
	jwt.StandardClaims
}

func (c *Claims) Actor() domain.Actor {
	return domain.Actor{
		UserID:    c.UserID,
		RenterID:  c.RenterID,
		StationID: c.StationID,
		Role:      domain.Role(c.Role),
	}
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(actor domain.Actor, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:    actor.UserID,
		RenterID:  actor.RenterID,
		StationID: actor.StationID,
		Role:      string(actor.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "evrental",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != "evrental" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
