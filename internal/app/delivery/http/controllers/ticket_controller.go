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

type TicketController struct {
	Log           *zap.Logger
	TicketUsecase contracts.TicketUsecase
}

var (
	ticketControllerInstance *TicketController
	onceTicketController     sync.Once
)

func NewTicketController(logger *zap.Logger, ticketUsecase contracts.TicketUsecase) *TicketController {
	onceTicketController.Do(func() {
		ticketControllerInstance = &TicketController{
			Log:           logger,
			TicketUsecase: ticketUsecase,
		}
	})
	return ticketControllerInstance
}

func (ctrl *TicketController) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("TicketController.SubmitTicket called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SubmitTicket)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("TicketController.SubmitTicket invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.SubmitTicket(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("TicketController.SubmitTicket error from usecase",
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

	ctrl.Log.Info("TicketController.SubmitTicket succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TicketCreatedSuccess, response)
}

func (ctrl *TicketController) ListTickets(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("TicketController.ListTickets called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.ListTickets(ctx, sessionData)
	if err != nil {
		ctrl.Log.Error("TicketController.ListTickets error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketListSuccess, response)
}

func (ctrl *TicketController) GetTicket(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.GetTicket called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.GetTicket(ctx, sessionData, ticketID)
	if err != nil {
		ctrl.Log.Error("TicketController.GetTicket error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketGetSuccess, response)
}

func (ctrl *TicketController) AssignTicket(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.AssignTicket called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.AssignTicket(ctx, sessionData, ticketID)
	if err != nil {
		ctrl.Log.Error("TicketController.AssignTicket error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TicketController.AssignTicket succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketAssignedSuccess, response)
}

func (ctrl *TicketController) ProvideConsultation(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.ProvideConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	request := new(requests.ProvideConsultation)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("TicketController.ProvideConsultation invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.ProvideConsultation(ctx, sessionData, ticketID, request)
	if err != nil {
		ctrl.Log.Error("TicketController.ProvideConsultation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TicketController.ProvideConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketConsultationSuccess, response)
}

func (ctrl *TicketController) MarkSolved(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.MarkSolved called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.MarkSolved(ctx, sessionData, ticketID)
	if err != nil {
		ctrl.Log.Error("TicketController.MarkSolved error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketSolvedSuccess, response)
}

func (ctrl *TicketController) AddMessage(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.AddMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	request := new(requests.TicketMessage)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("TicketController.AddMessage invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.AddMessage(ctx, sessionData, ticketID, request)
	if err != nil {
		ctrl.Log.Error("TicketController.AddMessage error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketMessageAddedSuccess, response)
}

func (ctrl *TicketController) CloseTicket(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.CloseTicket called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.CloseTicket(ctx, sessionData, ticketID)
	if err != nil {
		ctrl.Log.Error("TicketController.CloseTicket error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketClosedSuccess, response)
}

func (ctrl *TicketController) CreatePaymentSession(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ticketID := chi.URLParam(r, "ticketID")
	if ticketID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "ticketID"))
		return
	}
	ctrl.Log.Info("TicketController.CreatePaymentSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticketID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.CreatePaymentSession(ctx, sessionData, ticketID)
	if err != nil {
		ctrl.Log.Error("TicketController.CreatePaymentSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticketID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentSessionCreatedSuccess, response)
}

func (ctrl *TicketController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, err := extractRequestContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("TicketController.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.VerifyPayment)
	if err := utils.DecodeAndValidateJSONBody(r, request); err != nil {
		ctrl.Log.Error("TicketController.VerifyPayment invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.VerifyPayment(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("TicketController.VerifyPayment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TicketController.VerifyPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TicketPaymentVerifySuccess, response)
}
