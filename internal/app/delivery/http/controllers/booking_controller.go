package controllers

import (
	"context"
	"net/http"
	"skinbloom-service/internal/app/contracts"
	"skinbloom-service/internal/pkg/constvars"
	"skinbloom-service/internal/pkg/dto/requests"
	"skinbloom-service/internal/pkg/exceptions"
	"skinbloom-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	requestID, err := extractRequestID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("BookingController.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request := &requests.AvailableSlots{
		DermatologistID: r.URL.Query().Get("dermatologist_id"),
		Date:            r.URL.Query().Get("date"),
		SessionType:     r.URL.Query().Get("session_type"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("BookingController.GetAvailableSlots validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.GetAvailableSlots(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.GetAvailableSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotListSuccess, response)
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBooking)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("BookingController.CreateBooking invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreateBooking(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedSuccess, response)
}

func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("BookingController.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.ListBookings(ctx, sessionData)
	if err != nil {
		ctrl.Log.Error("BookingController.ListBookings error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingListSuccess, response)
}

func (ctrl *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "bookingID"))
		return
	}
	ctrl.Log.Info("BookingController.GetBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.GetBooking(ctx, sessionData, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.GetBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingGetSuccess, response)
}

func (ctrl *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "bookingID"))
		return
	}
	ctrl.Log.Info("BookingController.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	request := new(requests.UpdateBookingStatus)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("BookingController.UpdateBookingStatus invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.UpdateBookingStatus(ctx, sessionData, bookingID, request)
	if err != nil {
		ctrl.Log.Error("BookingController.UpdateBookingStatus error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.UpdateBookingStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingStatusUpdatedSuccess, response)
}

func (ctrl *BookingController) StartConsultation(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "bookingID"))
		return
	}
	ctrl.Log.Info("BookingController.StartConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.StartConsultation(ctx, sessionData, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.StartConsultation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.StartConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingStartedSuccess, response)
}

func (ctrl *BookingController) CreatePaymentSession(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "bookingID"))
		return
	}
	ctrl.Log.Info("BookingController.CreatePaymentSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreatePaymentSession(ctx, sessionData, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.CreatePaymentSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentSessionCreatedSuccess, response)
}

func (ctrl *BookingController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("BookingController.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.VerifyPayment)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("BookingController.VerifyPayment invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.VerifyPayment(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("BookingController.VerifyPayment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.VerifyPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingPaymentVerifySuccess, response)
}
