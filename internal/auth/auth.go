package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the admin session token.
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JwtSecret and TokenTTL are set once from config in main before the router
// starts serving.
var (
	JwtSecret []byte
	TokenTTL  = 24 * time.Hour
)

// Configure installs the signing secret and token lifetime.
func Configure(secret, expiration string) error {
	JwtSecret = []byte(secret)
	if expiration != "" {
		ttl, err := time.ParseDuration(expiration)
		if err != nil {
			return err
		}
		TokenTTL = ttl
	}
	return nil
}

func GenerateJWT(email, role string) (string, error) {
	expirationTime := time.Now().Add(TokenTTL)
	claims := &JWTClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}
