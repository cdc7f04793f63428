package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"url":               "must be a valid URL",
	"datetime":          "must match the format %s",
	"session_type":      "must be one of 'photo_review', 'video_call' or 'follow_up'",
	"consultation_type": "must be one of 'photo_review', 'video_call' or 'follow_up'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"

	ErrClientDermatologistNotFound = "dermatologist not found"
	ErrClientTicketNotFound        = "consultation ticket not found"
	ErrClientBookingNotFound       = "booking not found"
	ErrClientProductNotFound       = "one or more recommended products are not available"
	ErrClientNotificationNotFound  = "notification not found"

	ErrClientPhotoRequired = "at least one photo is required for photo review"

	ErrClientTicketAlreadyAssigned = "this ticket is already assigned to a dermatologist"
	ErrClientTicketNotAssignedYou  = "this ticket is assigned to another dermatologist"
	ErrClientTicketNotAnswered     = "this ticket has no consultation provided yet"
	ErrClientTicketNotSolved       = "payment is only available once the ticket is solved"
	ErrClientTicketAlreadyPaid     = "this ticket is already paid"
	ErrClientTicketNotPaid         = "only paid tickets can be closed"
	ErrClientTicketStatusInvalid   = "the ticket status does not allow this action"

	ErrClientResourceLocked = "another operation on this resource is in progress, please retry"

	ErrClientSlotAlreadyBooked    = "the selected time slot is no longer available"
	ErrClientSlotInPast           = "the selected time slot is in the past"
	ErrClientSlotOutsideSchedule  = "the selected time is outside the dermatologist's schedule"
	ErrClientBookingNotConfirmed  = "the consultation can only start from a confirmed booking"
	ErrClientBookingFinalStatus   = "this booking already reached a final status"
	ErrClientBookingStatusInvalid = "the requested booking status change is not allowed"
	ErrClientBookingAlreadyPaid   = "this booking is already paid"
	ErrClientBookingNotPayable    = "payment is only available for completed bookings"

	ErrClientPaymentNotCompleted  = "the payment is not completed yet"
	ErrClientPaymentProviderIssue = "the payment provider could not process the request"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Cannot parse JSON request body"
	ErrDevCannotParseDate            = "Cannot parse date input"
	ErrDevMissingRequestID           = "Request ID not found in request context"
	ErrDevMissingSessionData         = "Session data not found in request context"
	ErrDevCannotParseSessionData     = "Cannot parse session data from context"
	ErrDevAuthTokenMissing           = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired  = "Authorization token is invalid or expired"
	ErrDevRoleTypeDoesntMatch        = "Actor role does not allow this operation"
	ErrDevResourceOwnershipViolation = "Actor does not own the requested resource"
	ErrDevURLParamIDValidationFailed = "URL parameter '%s' is missing or invalid"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded while processing request"

	ErrDevDBFailedToCreateIndex      = "Failed to create index in MongoDB"
	ErrDevDBFailedToFindDocument     = "Failed to find document in MongoDB"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document into MongoDB"
	ErrDevDBFailedToUpdateDocument   = "Failed to update document in MongoDB"
	ErrDevDBFailedToDeleteDocument   = "Failed to delete document in MongoDB"
	ErrDevDBFailedToIterateDocuments = "Failed to iterate documents from MongoDB"
	ErrDevDBStringNotObjectID        = "Provided string is not a valid MongoDB ObjectID"

	ErrDevRedisFailedToGet = "Failed to get value from Redis"
	ErrDevRedisFailedToSet = "Failed to set value in Redis"

	ErrDevStorageFailedToUpload = "Failed to upload object to storage"

	ErrDevPaymentGatewayRequest  = "Payment gateway request failed"
	ErrDevPaymentGatewayResponse = "Payment gateway returned an unexpected response"
)
