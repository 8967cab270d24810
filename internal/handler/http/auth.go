package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/service"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/internal/utils"
	"github.com/patas-felizes/backend/models"
)

// registerRequest is the JSON payload of POST /register.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// loginRequest is the JSON payload of POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authentication handles POST /authentication, the Basic-credential flow.
//
// Credentials arrive as HTTP Basic authorization and are validated for
// presence only; no stored identity is involved. On success the response
// carries a short-lived token embedding the submitted username.
func (h *Handler) authentication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, password, ok := r.BasicAuth()
	if !ok || username == "" || password == "" {
		log.Error().Msg("basic credentials missing")
		utils.WriteJSON(w, map[string]string{
			"message":          "username or password is(are) missed",
			"WWW-Authenticate": `Basic auth="Login required"`,
		}, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.IssueAdHocToken(ctx, username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, map[string]string{
			"message":          "could not verify",
			"WWW-Authenticate": `Basic auth="Login required"`,
		}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"message": "Validated successfully",
		"token":   token.SignedString,
		"exp":     token.Claims.ExpiresAt.Time.Format(time.RFC3339),
	}, http.StatusOK)
}

// register handles POST /register, creating a user account for the
// password-based flow.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"mensagem": "JSON inválido"}, http.StatusBadRequest)
		return
	}

	user := models.User{Username: payload.Username, Email: payload.Email}

	_, err := h.services.AuthService.RegisterUser(ctx, user, payload.Password)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			log.Error().Any("fields", vErr.Fields).Msg("invalid registration data provided")
			utils.WriteJSON(w, map[string]any{"erro": vErr.Fields}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("user already registered")
			utils.WriteJSON(w, map[string]string{"mensagem": "Usuário já cadastrado"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, map[string]string{"mensagem": "Erro interno no servidor"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{"mensagem": "Usuário criado com sucesso"}, http.StatusCreated)
}

// login handles POST /login, the registered-user flow. On success the
// response carries a long-lived token embedding the user's numeric
// identifier.
//
// Wrong password answers 400, not 401, matching the behaviour the mobile
// client already depends on.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, map[string]string{"mensagem": "JSON inválido"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("login data missing")
			utils.WriteJSON(w, map[string]string{"mensagem": "Email e senha são obrigatórios"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSON(w, map[string]string{"mensagem": "Usuário não encontrado"}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSON(w, map[string]string{"mensagem": "Senha inválida"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, map[string]string{"mensagem": "Erro interno no servidor"}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.IssueSessionToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, map[string]string{"mensagem": "Erro interno no servidor"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"token": token.SignedString}, http.StatusOK)
}
