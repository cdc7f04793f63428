package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Ticket messages
	TicketCreatedSuccess       = "consultation ticket submitted successfully"
	TicketGetSuccess           = "get ticket successfully"
	TicketListSuccess          = "get tickets successfully"
	TicketAssignedSuccess      = "ticket assigned successfully"
	TicketConsultationSuccess  = "consultation provided successfully"
	TicketSolvedSuccess        = "ticket marked as solved"
	TicketClosedSuccess        = "ticket closed successfully"
	TicketMessageAddedSuccess  = "message added successfully"
	TicketPaymentVerifySuccess = "ticket payment verified successfully"

	// Booking messages
	SlotListSuccess             = "get available slots successfully"
	BookingCreatedSuccess       = "booking created successfully"
	BookingGetSuccess           = "get booking successfully"
	BookingListSuccess          = "get bookings successfully"
	BookingStatusUpdatedSuccess = "booking status updated successfully"
	BookingStartedSuccess       = "consultation started successfully"
	BookingPaymentVerifySuccess = "booking payment verified successfully"

	// Payment messages
	PaymentSessionCreatedSuccess = "payment session created successfully"

	// Notification messages
	NotificationListSuccess    = "get notifications successfully"
	NotificationReadSuccess    = "notification marked as read"
	NotificationDeletedSuccess = "notification deleted successfully"
)
