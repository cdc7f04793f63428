package utils

import (
	"errors"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
)

// ParseSessionJWT validates the signed credential and extracts the actor's
// identity. The token carries user id and role; issuance happens elsewhere.
func ParseSessionJWT(tokenString, secret string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return nil, errors.New("token missing user_id or role claim")
	}

	session := &models.Session{
		UserID: userID,
		Role:   role,
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	return session, nil
}

// ParseSessionData decodes the session payload stored in the request context.
func ParseSessionData(sessionData string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrCannotParseSessionData(err)
	}
	return &session, nil
}

// MarshalSessionData encodes a session for storage in the request context.
func MarshalSessionData(session *models.Session) (string, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return "", exceptions.ErrCannotParseSessionData(err)
	}
	return string(raw), nil
}
