package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
	ErrUnsupportedAlg   = errors.New("unsupported signing algorithm")
	ErrMissingSubject   = errors.New("token subject missing")
	ErrMissingTenantRef = errors.New("token restaurant_id missing")
)

type Claims struct {
	RestaurantID int64 `json:"restaurant_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	method        jwt.SigningMethod
	tokenDuration time.Duration
	now           func() time.Time
}

// NewService accepts HMAC algorithms only (HS256, HS384, HS512) since the key is a shared secret.
func NewService(secretKey, algorithm string, tokenDuration time.Duration) (*Service, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnsupportedAlg
	}
	return &Service{
		secretKey:     []byte(secretKey),
		method:        method,
		tokenDuration: tokenDuration,
		now:           time.Now,
	}, nil
}

func (s *Service) GenerateToken(subject string, restaurantID int64) (string, error) {
	now := s.now()
	claims := Claims{
		RestaurantID: restaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	if claims.RestaurantID < 1 {
		return nil, ErrMissingTenantRef
	}

	return claims, nil
}
