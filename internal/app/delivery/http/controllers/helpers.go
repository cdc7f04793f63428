package controllers

import (
	"net/http"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/exceptions"
)

// extractRequestContext pulls the request id and session payload that the
// middleware chain stored in the context. Both must be present on
// authenticated routes.
func extractRequestContext(r *http.Request) (string, string, error) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		return "", "", exceptions.ErrMissingRequestID(nil)
	}
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return "", "", exceptions.ErrMissingSessionData(nil)
	}
	return requestID, sessionData, nil
}

// extractRequestID is the variant for routes that do not require a session.
func extractRequestID(r *http.Request) (string, error) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		return "", exceptions.ErrMissingRequestID(nil)
	}
	return requestID, nil
}
