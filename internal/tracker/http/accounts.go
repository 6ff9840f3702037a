package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// AccountsHandler serves registration and email verification.
type AccountsHandler struct {
	AccountService *service.AccountService
	VerifyRedirect string
}

// HandleRegister handles POST /v1/accounts
//
//	@Summary		Register an account
//	@Description	Creates an account and its profile. Allow-listed domains receive a verification email;
//	@Description	any other domain is stored as rejected, gets no email and the call fails with domain_not_allowed.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.RegisterRequest	true	"Registration"
//	@Success		201		{object}	trackersdk.Profile			"Created profile"
//	@Failure		400		{object}	trackersdk.APIError			"Invalid email or password"
//	@Failure		403		{object}	trackersdk.APIError			"Domain not allowed"
//	@Failure		409		{object}	trackersdk.APIError			"Email already registered"
//	@Failure		429		{object}	trackersdk.APIError			"Rate limit exceeded"
//	@Router			/v1/accounts [post].
func (h *AccountsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trackersdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		log.Warn("failed to parse request", "err", err)
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	profile, err := h.AccountService.Register(ctx, service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		DisplayName:     req.DisplayName,
	})
	if err != nil {
		if errors.Is(err, service.ErrDomainNotAllowed) {
			log.Info("registration from untrusted domain", slog.String("domain", profile.Domain))
		}
		writeError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, profile)
}

// HandleVerify handles POST /v1/accounts/verify
//
//	@Summary		Verify an email address
//	@Description	Consumes the token from a verification email. Trusted domains are approved on success.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.VerifyEmailRequest	true	"Token"
//	@Success		200		{object}	trackersdk.Profile				"Updated profile"
//	@Failure		401		{object}	trackersdk.APIError				"Token invalid, expired or used"
//	@Router			/v1/accounts/verify [post].
func (h *AccountsHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.VerifyEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	profile, err := h.AccountService.VerifyEmail(ctx, req.Token)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}

// HandleVerifyLink handles GET /v1/accounts/verify?token=
//
//	@Summary		Follow a verification link
//	@Description	The link mailed to registrants. Redirects into the application on success.
//	@Tags			Accounts
//	@Param			token	query	string	true	"Verification token"
//	@Success		303		"Redirect to the login screen"
//	@Failure		401		{object}	trackersdk.APIError	"Token invalid, expired or used"
//	@Router			/v1/accounts/verify [get].
func (h *AccountsHandler) HandleVerifyLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := h.AccountService.VerifyEmail(ctx, r.URL.Query().Get("token")); err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.NoCache(w)
	http.Redirect(w, r, h.VerifyRedirect, http.StatusSeeOther)
}

// HandleResend handles POST /v1/accounts/verify/resend
//
//	@Summary		Resend the verification email
//	@Description	Always answers 202 so the endpoint cannot be used to discover accounts.
//	@Tags			Accounts
//	@Accept			json
//	@Param			request	body	trackersdk.ResendVerificationRequest	true	"Email"
//	@Success		202		"Accepted"
//	@Failure		400		{object}	trackersdk.APIError	"Invalid request"
//	@Router			/v1/accounts/verify/resend [post].
func (h *AccountsHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.ResendVerificationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" {
		trackersdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	if err := h.AccountService.ResendVerification(ctx, req.Email); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
