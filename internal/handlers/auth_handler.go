package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/httperr"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
	ucAuth "github.com/BruksfildServices01/ubereats-api/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.RegisterUser
	login    *ucAuth.LoginUser
}

func NewAuthHandler(
	register *ucAuth.RegisterUser,
	login *ucAuth.LoginUser,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required"`
	Marketing *bool  `json:"marketing"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "invalid_request", "Données d'inscription invalides", err)
		return
	}

	session, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Marketing: req.Marketing != nil && *req.Marketing,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailExists):
			httperr.BadRequest(c, "email_already_exists", "Un utilisateur avec cet email existe déjà")
		case errors.Is(err, ucAuth.ErrInvalidEmailDomain):
			httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'email ne semble pas valide")
		case errors.Is(err, models.ErrValidation):
			httperr.Invalid(c, "validation_error", "Données d'inscription invalides", err)
		default:
			httperr.Internal(c, "register_failed", "Erreur lors de l'inscription", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur créé avec succès",
		"user":    session.User,
		"token":   session.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "invalid_request", "Données de connexion invalides", err)
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ucAuth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou mot de passe incorrect")
			return
		}
		httperr.Internal(c, "login_failed", "Erreur lors de la connexion", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Connexion réussie",
		"user":    session.User,
		"token":   session.Token,
	})
}
