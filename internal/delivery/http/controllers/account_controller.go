package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"eventmanagement/internal/delivery/http/helpers"
	"eventmanagement/internal/domain"
	"eventmanagement/internal/metrics"
)

// Account response bodies and redirect target.
const (
	MsgRegisterFailed = "Error registering user"
	MsgLoginFailed    = "Error logging in user"
	AccountRedirect   = "/index.html"
)

// RegisterRequest is the form body for POST /register.
type RegisterRequest domain.RegistrationInput

// BindForm implements helpers.FormBinder.
func (r *RegisterRequest) BindForm(v url.Values) {
	r.Username = v.Get("username")
	r.Email = v.Get("email")
	r.Password = v.Get("password")
}

// LoginRequest is the form body for POST /login.
type LoginRequest domain.LoginInput

// BindForm implements helpers.FormBinder.
func (r *LoginRequest) BindForm(v url.Values) {
	r.Username = v.Get("username")
	r.Password = v.Get("password")
}

// AccountController handles registration and login.
type AccountController struct {
	Logger  *slog.Logger
	Service domain.AccountService
}

// NewAccountController creates an AccountController with the given logger and service.
func NewAccountController(logger *slog.Logger, svc domain.AccountService) *AccountController {
	return &AccountController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a user
// @Description Hash the password and store a new user. Username and email must be unique. Every failure, including a missing field or a taken username, answers 500.
// @Tags accounts
// @Accept x-www-form-urlencoded,mpfd,json
// @Produce plain
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /index.html"
// @Failure 400 {string} string "Invalid request body"
// @Failure 500 {string} string "Error registering user"
// @Router /register [post]
func (c *AccountController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeForm(w, r, &req) {
		return
	}
	user, err := c.Service.Register(r.Context(), domain.RegistrationInput(req))
	metrics.RecordFormSubmission("register", err)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, MsgRegisterFailed)
		return
	}
	c.Logger.InfoContext(r.Context(), "user registered", "id", user.ID, "username", user.Username)
	helpers.Redirect(w, r, AccountRedirect)
}

// Login godoc
// @Summary Log in
// @Description Check a username and password against the stored hash. No session or token is issued.
// @Tags accounts
// @Accept x-www-form-urlencoded,mpfd,json
// @Produce plain
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /index.html"
// @Failure 400 {string} string "Invalid request body"
// @Failure 401 {string} string "Invalid username or password"
// @Failure 500 {string} string "Error logging in user"
// @Router /login [post]
func (c *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeForm(w, r, &req) {
		return
	}
	user, err := c.Service.Login(r.Context(), domain.LoginInput(req))
	metrics.RecordFormSubmission("login", err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.Logger.InfoContext(r.Context(), "login rejected", "username", req.Username)
			helpers.WriteText(w, http.StatusUnauthorized, helpers.MsgInvalidCredentials)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteText(w, http.StatusInternalServerError, MsgLoginFailed)
		return
	}
	c.Logger.InfoContext(r.Context(), "user logged in", "id", user.ID)
	helpers.Redirect(w, r, AccountRedirect)
}
