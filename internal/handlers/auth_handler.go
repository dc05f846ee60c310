package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hvrSSB04/ssb-backend/internal/config"
	"github.com/hvrSSB04/ssb-backend/internal/httperr"
	"github.com/hvrSSB04/ssb-backend/internal/httpresp"
	"github.com/hvrSSB04/ssb-backend/internal/token"
	ucBarber "github.com/hvrSSB04/ssb-backend/internal/usecase/barber"
	"github.com/hvrSSB04/ssb-backend/internal/validators"
)

type AuthHandler struct {
	register *ucBarber.Register
	login    *ucBarber.Login
	config   *config.Config
}

func NewAuthHandler(
	register *ucBarber.Register,
	login *ucBarber.Login,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		config:   cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	ShopName    string   `json:"shopName" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Experience  string   `json:"experience" binding:"required"`
	Specialties []string `json:"specialties"`
	Password    string   `json:"password" binding:"required"`
}

type LoginRequest struct {
	Barbername string `json:"barbername" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// the legacy surface reported schema failures as a server error
		httperr.Internal(c, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailShaped(email) {
		httperr.BadRequest(c, "Invalid email address")
		return
	}

	b, err := h.register.Execute(c.Request.Context(), ucBarber.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       email,
		Phone:       req.Phone,
		ShopName:    req.ShopName,
		Address:     req.Address,
		Experience:  req.Experience,
		Specialties: req.Specialties,
		Password:    req.Password,
	})

	if err != nil {
		if httperr.IsBusiness(err, "email_already_exists") {
			httperr.BadRequest(c, "A barber with this email already exists")
			return
		}
		httperr.Internal(c, "Failed to create account")
		return
	}

	// PasswordHash carries json:"-"; the credential never leaves the server.
	httpresp.OK(c, b)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "Invalid username or password")
		return
	}

	b, err := h.login.Execute(c.Request.Context(), req.Barbername, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "Invalid username or password")
			return
		}
		httperr.Internal(c, "Server error. Please try again later.")
		return
	}

	sessionToken, err := token.NewBarberToken(h.config.JWTSecret, b)
	if err != nil {
		httperr.Internal(c, "Server error. Please try again later.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":        b.ID,
		"firstName": b.FirstName,
		"lastName":  b.LastName,
		"email":     b.Email,
		"shopName":  b.ShopName,
		"token":     sessionToken,
	})
}
