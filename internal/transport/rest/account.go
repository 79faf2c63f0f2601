package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/config"
	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/account"
	"github.com/heartmarshall/givefund-backend/pkg/ctxutil"
)

type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.Account, error)
	Verify(ctx context.Context, accountID uuid.UUID) error
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
	Logout(ctx context.Context, token string) error
	CurrentSession(ctx context.Context) (*domain.Account, error)
	List(ctx context.Context, input account.ListInput) (domain.Page[domain.Account], error)
	UpdateProfile(ctx context.Context, input account.UpdateProfileInput) (*domain.Account, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input account.ResetPasswordInput) error
	Deactivate(ctx context.Context, ids []uuid.UUID) (int64, error)
	ChangeRole(ctx context.Context, input account.ChangeRoleInput) (domain.Role, error)
}

// AccountHandler serves account REST endpoints.
type AccountHandler struct {
	svc    accountService
	cookie config.AuthConfig
	log    *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, cookie config.AuthConfig, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, cookie: cookie, log: logger.With("handler", "account")}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Fullname string `json:"fullname" validate:"required,max=255"`
	Phone    string `json:"phone"    validate:"max=32"`
	Address  string `json:"address"  validate:"max=500"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Fullname string `json:"fullname" validate:"max=255"`
	Phone    string `json:"phone"    validate:"max=32"`
	Address  string `json:"address"  validate:"max=500"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type idsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type changeRoleRequest struct {
	AccountID uuid.UUID `json:"accountID" validate:"required"`
	Role      string    `json:"role"      validate:"required,oneof=user admin master"`
}

type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type loginResponse struct {
	Account   accountResponse `json:"account"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type sessionResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
}

// Register handles POST /account.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	acc, err := h.svc.Register(r.Context(), account.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Fullname: req.Fullname,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(*acc))
}

// Verify handles GET /account/verify/{accountID}.
func (h *AccountHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "accountID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Verify(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": domain.AccountStatusActive.String()})
}

// Login handles POST /account/login and sets the session cookie.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Login(r.Context(), account.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(res.Token, res.ExpiresAt))
	writeJSON(w, http.StatusOK, loginResponse{
		Account:   toAccountResponse(*res.Account),
		ExpiresAt: res.ExpiresAt,
	})
}

// Logout handles POST /account/logout and clears the session cookie.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), ctxutil.SessionTokenFromCtx(r.Context())); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0)))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Session handles GET /account/session.
func (h *AccountHandler) Session(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.CurrentSession(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		ID:       acc.ID.String(),
		Fullname: acc.Fullname,
		Role:     acc.Role.String(),
	})
}

// List handles GET /account?accountID=&keyword=&page=&perPage=.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.svc.List(r.Context(), account.ListInput{
		AccountID:   accountID,
		Keyword:     r.URL.Query().Get("keyword"),
		PageRequest: page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(res, toAccountResponse))
}

// UpdateProfile handles PUT /account/{accountID}.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "accountID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	acc, err := h.svc.UpdateProfile(r.Context(), account.UpdateProfileInput{
		AccountID: id,
		Fullname:  req.Fullname,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(*acc))
}

// ForgotPassword handles POST /account/password/forgot.
func (h *AccountHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

// ResetPassword handles POST /account/password/reset.
func (h *AccountHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err := h.svc.ResetPassword(r.Context(), account.ResetPasswordInput{Token: req.Token, Password: req.Password})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Deactivate handles DELETE /account.
func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.Deactivate(r.Context(), req.IDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// ChangeRole handles PUT /account/role.
func (h *AccountHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	role, err := h.svc.ChangeRole(r.Context(), account.ChangeRoleInput{
		AccountID:   req.AccountID,
		CurrentRole: domain.Role(req.Role),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"role": role.String()})
}

func (h *AccountHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     h.cookie.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	}
	return c
}

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID.String(),
		Email:     a.Email,
		Fullname:  a.Fullname,
		Phone:     a.Phone,
		Address:   a.Address,
		Role:      a.Role.String(),
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt,
	}
}
