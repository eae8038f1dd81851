package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"github.com/abhishekchandaliya/auction-console/pkg/kvstore"
)

const whitelistKey = "session_tokens"

// AuthService gates the console behind the single shared operator
// password. A successful login mints a session token which stays valid
// until it expires or is revoked.
type AuthService struct {
	KV       kvstore.KVStore
	Password string
	Secret   string
}

func New(kv kvstore.KVStore, password, secret string) *AuthService {
	return &AuthService{
		KV:       kv,
		Password: password,
		Secret:   secret,
	}
}

func (a *AuthService) Login(password string) (string, error) {
	if password != a.Password {
		return "", errors.New("invalid credentials")
	}

	token, err := a.GenerateToken()
	if err != nil {
		return "", err
	}

	// Whitelist the token so a leaked one can be revoked before expiry.
	if err := a.KV.RPush(whitelistKey, token); err != nil {
		return "", err
	}
	return token, nil
}

func (a *AuthService) GenerateToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": uuid.NewString(),
		"exp":        time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString([]byte(a.Secret))
}

func (a *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(a.Secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

func (a *AuthService) CheckIfTokenIsWhiteListed(tokenString string) bool {
	tokens, err := a.KV.LRange(whitelistKey, 0, -1)
	if err != nil {
		return false
	}
	for _, t := range tokens {
		if t == tokenString {
			return true
		}
	}
	return false
}

func (a *AuthService) RevokeToken(tokenString string) error {
	return a.KV.LRem(whitelistKey, 1, tokenString)
}
