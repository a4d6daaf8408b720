package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/sdk"
	"github.com/aussiebroadwan/movies/pkg/slogx"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

// HandleCreate godoc
//
//	@Summary		Create Account
//	@Description	Register a new user. The password is stored as a salted SHA-256 digest.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.CredentialsRequest			true	"username, password"
//	@Success		201		{object}	sdk.MessageResponse				"Account created successfully"
//	@Failure		400		{object}	sdk.ErrorResponse				"username already taken"
//	@Failure		400		{object}	sdk.ValidationErrorResponse		"missing fields"
//	@Failure		500		{object}	sdk.ErrorResponse				"storage failure"
//	@Router			/create-account [post].
func (h *AccountsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.CredentialsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.AccountService.CreateAccount(r.Context(), req.Username, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdk.MessageResponse{Message: "Account created successfully"})
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Verify a username and password against the stored digest. No session is issued.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.CredentialsRequest			true	"username, password"
//	@Success		200		{object}	sdk.MessageResponse				"Login successful"
//	@Failure		400		{object}	sdk.ValidationErrorResponse		"missing fields"
//	@Failure		401		{object}	sdk.ErrorResponse				"wrong password"
//	@Failure		404		{object}	sdk.ErrorResponse				"unknown user"
//	@Failure		500		{object}	sdk.ErrorResponse				"storage failure"
//	@Router			/login [post].
func (h *AccountsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req sdk.CredentialsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.AccountService.Login(r.Context(), req.Username, req.Password); err != nil {
		slogx.FromContext(r.Context()).Warn("login failed",
			slog.String("username", req.Username), slogx.Err(err))
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "Login successful"})
}

// HandleUpdatePassword godoc
//
//	@Summary		Update Password
//	@Description	Replace a user's password after verifying the current one.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.UpdatePasswordRequest		true	"username, old_password, new_password"
//	@Success		200		{object}	sdk.MessageResponse				"Password updated successfully"
//	@Failure		400		{object}	sdk.ValidationErrorResponse		"missing fields"
//	@Failure		401		{object}	sdk.ErrorResponse				"old password does not match"
//	@Failure		404		{object}	sdk.ErrorResponse				"unknown user"
//	@Failure		500		{object}	sdk.ErrorResponse				"storage failure"
//	@Router			/update-password [post].
func (h *AccountsHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req sdk.UpdatePasswordRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	err := h.AccountService.ChangePassword(r.Context(), req.Username, req.OldPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessageResponse{Message: "Password updated successfully"})
}
