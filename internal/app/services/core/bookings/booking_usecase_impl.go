package bookings

import (
	"context"
	"errors"
	"fmt"
	"skinbloom-service/internal/app/config"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/app/models"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/dto/responses"
	"skinbloom-service/internal/pkg/exceptions"
	"skinbloom-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// slotBufferMinutes is the gap kept between consecutive sessions; the
// allocator steps through a window at session duration plus this buffer.
const slotBufferMinutes = 15

const (
	slotLockExpiration    = 10 * time.Second
	bookingLockExpiration = 15 * time.Second
)

// allowedStatusTransitions is the booking state machine: the forward chain
// plus the cancellation and no-show exits from each non-terminal state.
var allowedStatusTransitions = map[string][]string{
	models.BookingStatusScheduled:  {models.BookingStatusConfirmed, models.BookingStatusCancelled, models.BookingStatusNoShow},
	models.BookingStatusConfirmed:  {models.BookingStatusInProgress, models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusNoShow},
	models.BookingStatusInProgress: {models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusNoShow},
}

// statusNotificationTemplates holds the patient-facing copy per transition.
// Transitions without a template simply emit nothing.
var statusNotificationTemplates = map[string]struct {
	Title   string
	Message string
}{
	models.BookingStatusConfirmed:  {"Booking confirmed", "Your consultation booking has been confirmed."},
	models.BookingStatusCompleted:  {"Consultation completed", "Your consultation is complete. You can now proceed to payment."},
	models.BookingStatusCancelled:  {"Booking cancelled", "Your consultation booking has been cancelled."},
	models.BookingStatusNoShow:     {"Missed consultation", "Your consultation booking was marked as a no-show."},
	models.BookingStatusInProgress: {"Consultation started", "Your consultation has started."},
}

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	UserRepository    contracts.UserRepository
	PaymentGateway    contracts.PaymentGatewayService
	DocumentService   contracts.DocumentService
	LockerService     contracts.LockerService
	Dispatcher        contracts.NotificationDispatcher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	Location          *time.Location
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	userRepository contracts.UserRepository,
	paymentGateway contracts.PaymentGatewayService,
	documentService contracts.DocumentService,
	lockerService contracts.LockerService,
	dispatcher contracts.NotificationDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("bookingUsecase falling back to local timezone",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.Local
	}
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		UserRepository:    userRepository,
		PaymentGateway:    paymentGateway,
		DocumentService:   documentService,
		LockerService:     lockerService,
		Dispatcher:        dispatcher,
		InternalConfig:    internalConfig,
		Log:               logger,
		Location:          location,
	}
}

// GetAvailableSlots walks the dermatologist's availability windows for the
// requested day in fixed steps of session duration plus buffer, dropping
// candidates that are in the past or already booked. A candidate is kept as
// long as it starts inside the window, so the day's final session may run
// past the window's end.
func (uc *bookingUsecase) GetAvailableSlots(ctx context.Context, request *requests.AvailableSlots) ([]responses.Slot, error) {
	dermatologist, err := uc.UserRepository.FindByID(ctx, request.DermatologistID)
	if err != nil {
		return nil, err
	}
	if !dermatologist.IsActiveDermatologist() {
		return nil, exceptions.ErrDermatologistNotExist(nil)
	}

	date, err := time.ParseInLocation(constvars.DateFormat, request.Date, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	windows := dermatologist.Availability[utils.WeekdayName(date)]
	if len(windows) == 0 {
		return []responses.Slot{}, nil
	}

	dayStart, dayEnd := utils.DayBounds(date)
	bookedStartTimes, err := uc.BookingRepository.FindActiveStartTimesByDate(ctx, dermatologist.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	booked := make(map[int64]bool, len(bookedStartTimes))
	for _, startTime := range bookedStartTimes {
		booked[startTime.Unix()] = true
	}

	sessionType := request.SessionType
	if sessionType == "" {
		sessionType = models.SessionTypeVideoCall
	}
	duration := time.Duration(models.SessionDurationMinutes(sessionType)) * time.Minute
	step := duration + slotBufferMinutes*time.Minute
	now := time.Now()

	slots := []responses.Slot{}
	for _, window := range windows {
		windowStart, windowEnd, err := resolveWindowBounds(date, window)
		if err != nil {
			uc.Log.Warn("bookingUsecase skipping malformed availability window",
				zap.String(constvars.LoggingUserIDKey, dermatologist.ID),
				zap.Error(err),
			)
			continue
		}

		for candidate := windowStart; candidate.Before(windowEnd); candidate = candidate.Add(step) {
			if !candidate.After(now) {
				continue
			}
			if booked[candidate.Unix()] {
				continue
			}
			clock := candidate.Format(constvars.ClockFormat)
			slots = append(slots, responses.Slot{
				ID:        fmt.Sprintf("%s-%s", request.Date, clock),
				Date:      request.Date,
				Time:      clock,
				DateTime:  candidate,
				Available: true,
			})
		}
	}
	return slots, nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypePatient {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	dermatologist, err := uc.UserRepository.FindByID(ctx, request.DermatologistID)
	if err != nil {
		return nil, err
	}
	if !dermatologist.IsActiveDermatologist() {
		return nil, exceptions.ErrDermatologistNotExist(nil)
	}

	date, err := time.ParseInLocation(constvars.DateFormat, request.Date, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	clock, err := utils.ParseClock(request.Time)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	scheduledAt := utils.CombineDateAndClock(date, clock)

	if !scheduledAt.After(time.Now()) {
		return nil, exceptions.ErrSlotInPast(nil)
	}

	durationMinutes := models.SessionDurationMinutes(request.SessionType)
	if err := validateSlotAgainstSchedule(dermatologist, date, scheduledAt, durationMinutes); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeySlotLockFormat, dermatologist.ID, scheduledAt.Format(constvars.DateTimeFormat))
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, slotLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("bookingUsecase.CreateBooking failed to release lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	booking := &models.Booking{
		PatientID:       session.UserID,
		DermatologistID: dermatologist.ID,
		SessionType:     request.SessionType,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		Status:          models.BookingStatusScheduled,
		ConsultationFee: uc.resolveFee(dermatologist, request.SessionType),
		PaymentStatus:   models.PaymentStatusPending,
		Notes:           request.Notes,
	}

	bookingID, err := uc.BookingRepository.CreateIfSlotFree(ctx, booking)
	if err != nil {
		return nil, err
	}
	if bookingID == "" {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	uc.notify(ctx, session.UserID, models.NotificationTypeBooking,
		"Booking created",
		fmt.Sprintf("Your %s consultation is scheduled for %s.", booking.SessionType, scheduledAt.Format(constvars.DateTimeFormat)),
		bookingID,
	)
	uc.notify(ctx, dermatologist.ID, models.NotificationTypeBooking,
		"New booking",
		fmt.Sprintf("A patient booked a %s consultation for %s.", booking.SessionType, scheduledAt.Format(constvars.DateTimeFormat)),
		bookingID,
	)

	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) GetBooking(ctx context.Context, sessionData, bookingID string) (*responses.Booking, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if err := authorizeBookingAccess(session, booking); err != nil {
		return nil, err
	}
	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) ListBookings(ctx context.Context, sessionData string) ([]responses.Booking, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	switch session.Role {
	case constvars.RoleTypePatient:
		bookings, err = uc.BookingRepository.FindByPatientID(ctx, session.UserID)
	case constvars.RoleTypeDermatologist:
		bookings, err = uc.BookingRepository.FindByDermatologistID(ctx, session.UserID)
	case constvars.RoleTypeAdmin:
		bookings, err = uc.BookingRepository.FindAll(ctx)
	default:
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, *buildBookingResponse(&bookings[i]))
	}
	return result, nil
}

func (uc *bookingUsecase) UpdateBookingStatus(ctx context.Context, sessionData, bookingID string, request *requests.UpdateBookingStatus) (*responses.Booking, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if err := authorizeBookingAccess(session, booking); err != nil {
		return nil, err
	}

	// Patients may only cancel; everything else is staff-driven.
	if session.Role == constvars.RoleTypePatient && request.Status != models.BookingStatusCancelled {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	if booking.IsTerminal() {
		return nil, exceptions.ErrBookingFinalStatus(nil)
	}
	if !isTransitionAllowed(booking.Status, request.Status) {
		return nil, exceptions.ErrBookingStatusInvalid(nil)
	}

	booking.Status = request.Status
	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if template, ok := statusNotificationTemplates[booking.Status]; ok {
		uc.notify(ctx, booking.PatientID, models.NotificationTypeBooking, template.Title, template.Message, booking.ID)
		if session.UserID != booking.DermatologistID {
			uc.notify(ctx, booking.DermatologistID, models.NotificationTypeBooking,
				"Booking update",
				fmt.Sprintf("Booking status changed to %s.", booking.Status),
				booking.ID,
			)
		}
	}

	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) StartConsultation(ctx context.Context, sessionData, bookingID string) (*responses.Booking, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleTypeDermatologist {
		return nil, exceptions.ErrNotAllowedForRole(nil)
	}

	existing, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if existing.DermatologistID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	var meetingID, meetingLink string
	if existing.SessionType == models.SessionTypeVideoCall {
		meetingID = utils.GenerateMeetingID(existing.ID)
		meetingLink = utils.GenerateMeetingLink(uc.InternalConfig.App.MeetingBaseUrl, meetingID)
	}

	booking, err := uc.BookingRepository.StartIfConfirmed(ctx, bookingID, meetingID, meetingLink)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		if existing.IsTerminal() {
			return nil, exceptions.ErrBookingFinalStatus(nil)
		}
		return nil, exceptions.ErrBookingNotConfirmed(nil)
	}

	message := "Your consultation has started."
	if booking.MeetingLink != "" {
		message = fmt.Sprintf("Your consultation has started. Join here: %s", booking.MeetingLink)
	}
	uc.notify(ctx, booking.PatientID, models.NotificationTypeBooking, "Consultation started", message, booking.ID)

	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) CreatePaymentSession(ctx context.Context, sessionData, bookingID string) (*responses.PaymentSession, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if booking.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, exceptions.ErrBookingAlreadyPaid(nil)
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, exceptions.ErrBookingNotPayable(nil)
	}

	gatewayConfig := uc.InternalConfig.PaymentGateway
	checkoutSession, err := uc.PaymentGateway.CreateCheckoutSession(ctx, &requests.CheckoutSessionRequest{
		Amount:      booking.ConsultationFee,
		Currency:    gatewayConfig.Currency,
		Description: fmt.Sprintf("Dermatology consultation (%s)", booking.SessionType),
		SuccessUrl:  gatewayConfig.SuccessUrl,
		CancelUrl:   gatewayConfig.CancelUrl,
		Metadata:    map[string]string{"booking_id": booking.ID},
	})
	if err != nil {
		return nil, err
	}

	return &responses.PaymentSession{
		SessionID:   checkoutSession.ID,
		CheckoutURL: checkoutSession.URL,
		Amount:      booking.ConsultationFee,
		Currency:    gatewayConfig.Currency,
	}, nil
}

func (uc *bookingUsecase) VerifyPayment(ctx context.Context, sessionData string, request *requests.VerifyPayment) (*responses.Booking, error) {
	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	checkoutSession, err := uc.PaymentGateway.RetrieveSession(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if checkoutSession.PaymentStatus != models.PaymentStatusPaid {
		return nil, exceptions.ErrPaymentNotCompleted(nil)
	}
	bookingID := checkoutSession.Metadata["booking_id"]
	if bookingID == "" {
		return nil, exceptions.ErrPaymentGatewayResponse(errors.New("checkout session has no booking_id metadata"))
	}

	existing, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if session.Role != constvars.RoleTypeAdmin && existing.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyBookingLockFormat, bookingID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, bookingLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrResourceLocked(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("bookingUsecase.VerifyPayment failed to release lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	booking, err := uc.BookingRepository.MarkPaid(ctx, bookingID, checkoutSession.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if booking == nil {
		if existing.PaymentStatus == models.PaymentStatusPaid {
			return nil, exceptions.ErrBookingAlreadyPaid(nil)
		}
		return nil, exceptions.ErrBookingNotPayable(nil)
	}

	if receiptPath, err := uc.DocumentService.RenderBookingReceipt(ctx, booking); err != nil {
		uc.Log.Warn("bookingUsecase.VerifyPayment failed to render receipt",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	} else {
		booking.ReceiptPath = receiptPath
		if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
			return nil, err
		}
	}

	uc.notify(ctx, booking.PatientID, models.NotificationTypePayment,
		"Payment received",
		"Your booking payment has been verified. Thank you!",
		booking.ID,
	)
	uc.notify(ctx, booking.DermatologistID, models.NotificationTypePayment,
		"Consultation paid",
		"The patient has paid for a consultation you delivered.",
		booking.ID,
	)

	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) resolveFee(dermatologist *models.User, sessionType string) int64 {
	if dermatologist != nil {
		if fee, ok := dermatologist.ConsultationFees[sessionType]; ok && fee > 0 {
			return fee
		}
	}
	return uc.InternalConfig.Fees.FeeFor(sessionType)
}

func (uc *bookingUsecase) notify(ctx context.Context, recipientID, notificationType, title, message, resourceID string) {
	uc.Dispatcher.Dispatch(ctx, &models.Notification{
		RecipientID: recipientID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		ResourceID:  resourceID,
	})
}

func resolveWindowBounds(date time.Time, window models.AvailabilityWindow) (time.Time, time.Time, error) {
	startClock, err := utils.ParseClock(window.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endClock, err := utils.ParseClock(window.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return utils.CombineDateAndClock(date, startClock), utils.CombineDateAndClock(date, endClock), nil
}

// validateSlotAgainstSchedule checks that the requested start time lands on
// the allocator's grid inside one of the day's availability windows.
func validateSlotAgainstSchedule(dermatologist *models.User, date, scheduledAt time.Time, durationMinutes int) error {
	windows := dermatologist.Availability[utils.WeekdayName(date)]
	if len(windows) == 0 {
		return exceptions.ErrSlotOutsideSchedule(nil)
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := duration + slotBufferMinutes*time.Minute

	for _, window := range windows {
		windowStart, windowEnd, err := resolveWindowBounds(date, window)
		if err != nil {
			continue
		}
		if scheduledAt.Before(windowStart) || !scheduledAt.Before(windowEnd) {
			continue
		}
		if scheduledAt.Sub(windowStart)%step == 0 {
			return nil
		}
	}
	return exceptions.ErrSlotOutsideSchedule(nil)
}

func isTransitionAllowed(current, target string) bool {
	for _, allowed := range allowedStatusTransitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

func authorizeBookingAccess(session *models.Session, booking *models.Booking) error {
	switch session.Role {
	case constvars.RoleTypeAdmin:
		return nil
	case constvars.RoleTypePatient:
		if booking.PatientID == session.UserID {
			return nil
		}
	case constvars.RoleTypeDermatologist:
		if booking.DermatologistID == session.UserID {
			return nil
		}
	}
	return exceptions.ErrNotResourceOwner(nil)
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		ID:              booking.ID,
		PatientID:       booking.PatientID,
		DermatologistID: booking.DermatologistID,
		SessionType:     booking.SessionType,
		ScheduledAt:     booking.ScheduledAt,
		DurationMinutes: booking.DurationMinutes,
		Status:          booking.Status,
		ConsultationFee: booking.ConsultationFee,
		PaymentStatus:   booking.PaymentStatus,
		PaymentDate:     booking.PaymentDate,
		ReceiptPath:     booking.ReceiptPath,
		MeetingID:       booking.MeetingID,
		MeetingLink:     booking.MeetingLink,
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
