package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/user"
	"github.com/BruksfildServices01/ubereats-api/internal/httperr"
	"github.com/BruksfildServices01/ubereats-api/internal/middleware"
	ucAuth "github.com/BruksfildServices01/ubereats-api/internal/usecase/auth"
)

type MeHandler struct {
	currentUser *ucAuth.GetCurrentUser
}

func NewMeHandler(currentUser *ucAuth.GetCurrentUser) *MeHandler {
	return &MeHandler{currentUser: currentUser}
}

// GetMe runs behind AuthMiddleware, so a missing or bad token never
// reaches it. The token being valid does not mean the user still exists.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		httperr.Unauthorized(c, "invalid_token", "Token invalide")
		return
	}

	u, err := h.currentUser.Execute(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Utilisateur non trouvé")
			return
		}
		httperr.Internal(c, "me_failed", "Erreur lors de la récupération de l'utilisateur", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
