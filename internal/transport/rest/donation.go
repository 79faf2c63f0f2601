package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/donation"
	"github.com/heartmarshall/givefund-backend/internal/service/payment"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
)

type donationService interface {
	List(ctx context.Context, input donation.ListInput) (domain.Page[domain.DonationDetail], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error)
}

type paymentService interface {
	Initiate(ctx context.Context, input payment.InitiateInput) (*payment.InitiateResult, error)
	Execute(ctx context.Context, input payment.ExecuteInput) (*settlement.Result, error)
}

// DonationHandler serves donation and payment REST endpoints.
type DonationHandler struct {
	donations donationService
	payments  paymentService
	log       *slog.Logger
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(donations donationService, payments paymentService, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{
		donations: donations,
		payments:  payments,
		log:       logger.With("handler", "donation"),
	}
}

type initiatePaymentRequest struct {
	CauseID     uuid.UUID    `json:"causeID"     validate:"required"`
	Price       domain.Money `json:"price"       validate:"gt=0"`
	Description string       `json:"description" validate:"max=127"`
	ReturnURL   string       `json:"returnUrl"   validate:"required,url"`
	CancelURL   string       `json:"cancelUrl"   validate:"required,url"`
}

type executePaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
	PayerID   string `json:"payerId"   validate:"required"`
}

type initiatePaymentResponse struct {
	PaymentID   string `json:"paymentId"`
	ApprovalURL string `json:"approvalUrl"`
}

type executePaymentResponse struct {
	Success  bool             `json:"success"`
	Replayed bool             `json:"replayed"`
	Donation donationResponse `json:"donation"`
	Cause    causeResponse    `json:"cause"`
}

type donationResponse struct {
	ID        string       `json:"id"`
	CaptureID string       `json:"captureId"`
	Amount    domain.Money `json:"amount"`
	Currency  string       `json:"currency"`
	DonatedAt time.Time    `json:"donatedAt"`
	Account   *donorRef    `json:"account,omitempty"`
	Cause     *causeRef    `json:"cause,omitempty"`
}

type donorRef struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Phone    string `json:"phone"`
}

type causeRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// List handles GET /donation?accountID=&causeSearch=&donatorSearch=&page=&perPage=.
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	accountID, err := optionalUUIDQuery(r, "accountID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	res, err := h.donations.List(r.Context(), donation.ListInput{
		AccountID:     accountID,
		CauseSearch:   q.Get("causeSearch"),
		DonatorSearch: q.Get("donatorSearch"),
		PageRequest:   page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(res, toDonationDetailResponse))
}

// Get handles GET /donation/{donationID}.
func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "donationID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.donations.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDonationDetailResponse(*d))
}

// InitiatePayment handles POST /donation/payment.
func (h *DonationHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req initiatePaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.payments.Initiate(r.Context(), payment.InitiateInput{
		CauseID:     req.CauseID,
		Amount:      req.Price,
		Description: req.Description,
		ReturnURL:   req.ReturnURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, initiatePaymentResponse{PaymentID: res.PaymentID, ApprovalURL: res.ApprovalURL})
}

// ExecutePayment handles POST /donation/payment/execute: captures the
// approved payment and settles it.
func (h *DonationHandler) ExecutePayment(w http.ResponseWriter, r *http.Request) {
	var req executePaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.payments.Execute(r.Context(), payment.ExecuteInput{PaymentID: req.PaymentID, PayerID: req.PayerID})
	if err != nil {
		if stage := domain.SettlementStageOf(err); stage != "" {
			h.log.ErrorContext(r.Context(), "payment settlement failed",
				slog.String("payment_id", req.PaymentID),
				slog.String("stage", string(stage)),
				slog.String("error", err.Error()))
		}
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, executePaymentResponse{
		Success:  true,
		Replayed: res.Replayed,
		Donation: toDonationResponse(*res.Donation),
		Cause:    toCauseResponse(*res.Cause),
	})
}

func toDonationResponse(d domain.Donation) donationResponse {
	return donationResponse{
		ID:        d.ID.String(),
		CaptureID: d.CaptureID,
		Amount:    d.Amount,
		Currency:  d.Currency,
		DonatedAt: d.DonatedAt,
	}
}

func toDonationDetailResponse(d domain.DonationDetail) donationResponse {
	resp := toDonationResponse(d.Donation)
	resp.Account = &donorRef{
		ID:       d.Account.ID.String(),
		Email:    d.Account.Email,
		Fullname: d.Account.Fullname,
		Phone:    d.Account.Phone,
	}
	resp.Cause = &causeRef{ID: d.Cause.ID.String(), Title: d.Cause.Title}
	return resp
}
