package auth_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ms-events/internal/auth"
	"ms-events/internal/logger"
	"ms-events/internal/models"
	"ms-events/internal/utils"
)

type UserDBLayer interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	CreateUser(user models.User) error
}

type Handler struct {
	UserDB UserDBLayer
	Issuer *auth.TokenIssuer
	Logger *logger.Logger
}

func NewHandler(userDB UserDBLayer, issuer *auth.TokenIssuer, log *logger.Logger) *Handler {
	return &Handler{
		UserDB: userDB,
		Issuer: issuer,
		Logger: log,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if _, err := h.UserDB.GetUserByEmail(creds.Email); err == nil {
		h.Logger.LogSecurity("REGISTER", fmt.Sprintf("duplicate registration attempt for %s", creds.Email))
		writeError(w, http.StatusConflict, "An account with this email already exists")
		return
	} else if !errors.Is(err, models.ErrNotFound) {
		h.Logger.Error("API", fmt.Sprintf("Register: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Register: failed to hash password: %v", err))
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        creds.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := h.UserDB.CreateUser(user); err != nil {
		h.Logger.Error("API", fmt.Sprintf("Register: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.Issuer.Issue(user.ID, user.Email)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Register: failed to issue token: %v", err))
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	h.Logger.Info("AUTH", fmt.Sprintf("Registered new admin user %s", user.Email))
	writeJSON(w, http.StatusCreated, "Account created", session{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.UserDB.GetUserByEmail(creds.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Logger.LogSecurity("LOGIN", fmt.Sprintf("login attempt for unknown email %s", creds.Email))
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Logger.Error("API", fmt.Sprintf("Login: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		h.Logger.LogSecurity("LOGIN", fmt.Sprintf("bad password for %s", creds.Email))
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.Issuer.Issue(user.ID, user.Email)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("Login: failed to issue token: %v", err))
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	h.Logger.Info("AUTH", fmt.Sprintf("User %s logged in", user.Email))
	writeJSON(w, http.StatusOK, "Logged in", session{Token: token, User: *user})
}

// Me handles GET /api/auth/me behind the auth middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.UserDB.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Account no longer exists")
			return
		}
		h.Logger.Error("API", fmt.Sprintf("Me: %v", err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, "Current user", user)
}

func writeJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(utils.SuccessResponse(message, data))
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(utils.ErrorResponse(message, http.StatusText(status)))
}
