package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY   contextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY contextKey = "session_data"
)

// Roles carried by the session credential.
const (
	RoleTypePatient       = "patient"
	RoleTypeDermatologist = "dermatologist"
	RoleTypeAdmin         = "admin"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionTickets       = "tickets"
	MongoCollectionBookings      = "bookings"
	MongoCollectionConsultations = "consultations"
	MongoCollectionProducts      = "products"
	MongoCollectionNotifications = "notifications"
)

const (
	DateFormat     = "2006-01-02"
	ClockFormat    = "15:04"
	DateTimeFormat = "2006-01-02 15:04"
)

const (
	RedisKeySlotLockFormat    = "lock:slot:%s:%s"
	RedisKeyTicketLockFormat  = "lock:ticket:%s"
	RedisKeyBookingLockFormat = "lock:booking:%s"
	RedisKeyUserCacheFormat   = "cache:user:%s"
)
