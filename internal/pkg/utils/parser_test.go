package utils

import (
	"skinbloom-service/internal/app/models"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestParseSessionJWT(t *testing.T) {
	secret := "parser-test-secret"

	sign := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)
		return tokenString
	}

	t.Run("valid token yields the session", func(t *testing.T) {
		tokenString := sign(t, jwt.MapClaims{
			"user_id": "patient-1",
			"role":    "patient",
			"name":    "Ayu",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		session, err := ParseSessionJWT(tokenString, secret)

		assert.NoError(t, err)
		assert.Equal(t, "patient-1", session.UserID)
		assert.Equal(t, "patient", session.Role)
		assert.Equal(t, "Ayu", session.Name)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		tokenString := sign(t, jwt.MapClaims{"user_id": "patient-1", "role": "patient"})

		_, err := ParseSessionJWT(tokenString, "some-other-secret")

		assert.Error(t, err)
	})

	t.Run("missing identity claims are rejected", func(t *testing.T) {
		tokenString := sign(t, jwt.MapClaims{"role": "patient"})

		_, err := ParseSessionJWT(tokenString, secret)

		assert.Error(t, err)
	})

	t.Run("unexpected signing method is rejected", func(t *testing.T) {
		tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id": "patient-1",
			"role":    "patient",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = ParseSessionJWT(tokenString, secret)

		assert.Error(t, err)
	})
}

func TestSessionDataRoundTrip(t *testing.T) {
	session := &models.Session{
		UserID: "derm-1",
		Role:   "dermatologist",
		Name:   "Dr. Mora",
		Email:  "mora@example.com",
	}

	sessionData, err := MarshalSessionData(session)
	assert.NoError(t, err)

	decoded, err := ParseSessionData(sessionData)
	assert.NoError(t, err)
	assert.Equal(t, session, decoded)
}

func TestParseSessionData_Invalid(t *testing.T) {
	_, err := ParseSessionData("{not json")
	assert.Error(t, err)
}
