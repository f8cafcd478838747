package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ubereats-api/internal/domain/restaurant"
	"github.com/BruksfildServices01/ubereats-api/internal/httperr"
	"github.com/BruksfildServices01/ubereats-api/internal/models"
)

const msgRestaurantNotFound = "Restaurant non trouvé"

type RestaurantHandler struct {
	repo restaurant.Repository
}

func NewRestaurantHandler(repo restaurant.Repository) *RestaurantHandler {
	return &RestaurantHandler{repo: repo}
}

// --------- Requests ---------

type CreateRestaurantRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Rating      *float64 `json:"rating" binding:"required,min=0,max=5"`
	Time        *float64 `json:"time" binding:"required,min=0"`
	DeliveryFee *float64 `json:"deliveryFee" binding:"required,min=0"`
	Promo       string   `json:"promo"`
	Color1      string   `json:"color1" binding:"required"`
	Color2      string   `json:"color2" binding:"required"`
	Image       string   `json:"image" binding:"required"`
}

type UpdateRestaurantRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1"`
	Rating      *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Time        *float64 `json:"time,omitempty" binding:"omitempty,min=0"`
	DeliveryFee *float64 `json:"deliveryFee,omitempty" binding:"omitempty,min=0"`
	Promo       *string  `json:"promo,omitempty"`
	Color1      *string  `json:"color1,omitempty" binding:"omitempty,min=1"`
	Color2      *string  `json:"color2,omitempty" binding:"omitempty,min=1"`
	Image       *string  `json:"image,omitempty" binding:"omitempty,min=1"`
}

func (req UpdateRestaurantRequest) applyTo(r *models.Restaurant) {
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Category != nil {
		r.Category = *req.Category
	}
	if req.Rating != nil {
		r.Rating = *req.Rating
	}
	if req.Time != nil {
		r.Time = *req.Time
	}
	if req.DeliveryFee != nil {
		r.DeliveryFee = *req.DeliveryFee
	}
	if req.Promo != nil {
		r.Promo = *req.Promo
	}
	if req.Color1 != nil {
		r.Color1 = *req.Color1
	}
	if req.Color2 != nil {
		r.Color2 = *req.Color2
	}
	if req.Image != nil {
		r.Image = *req.Image
	}
}

// --------- Query helpers ---------

func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: not a number", key)
	}
	return &v, nil
}

// optionalInt reads the leading integer of the value, so "30.5" and
// "30min" both mean 30.
func optionalInt(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}

	end := 0
	if raw[0] == '-' || raw[0] == '+' {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return nil, fmt.Errorf("%s: not an integer", key)
	}

	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		return nil, fmt.Errorf("%s: not an integer", key)
	}
	return &v, nil
}

func filterFromQuery(c *gin.Context) (restaurant.Filter, error) {
	minRating, err1 := optionalFloat(c, "minRating")
	maxFee, err2 := optionalFloat(c, "maxDeliveryFee")
	maxTime, err3 := optionalInt(c, "maxTime")
	if err := errors.Join(err1, err2, err3); err != nil {
		return restaurant.Filter{}, err
	}
	return restaurant.NewFilter(c.Query("category"), minRating, maxFee, maxTime), nil
}

// validID rejects malformed ids before they reach the store.
func validID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !models.IsValidID(id) {
		httperr.BadRequest(c, "invalid_id", "Identifiant de restaurant invalide")
		return "", false
	}
	return id, true
}

// writeRepoError maps repository failures shared by the id-addressed
// routes.
func writeRepoError(c *gin.Context, err error, code, message string) {
	switch {
	case errors.Is(err, restaurant.ErrNotFound):
		httperr.NotFound(c, "restaurant_not_found", msgRestaurantNotFound)
	case errors.Is(err, restaurant.ErrInvalidID):
		httperr.BadRequest(c, "invalid_id", "Identifiant de restaurant invalide")
	case errors.Is(err, models.ErrValidation):
		httperr.Invalid(c, "validation_error", "Données du restaurant invalides", err)
	default:
		httperr.Internal(c, code, message, err)
	}
}

// --------- Handlers ---------

func (h *RestaurantHandler) List(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		httperr.Invalid(c, "invalid_query", "Paramètres de filtre invalides", err)
		return
	}

	restaurants, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erreur lors de la récupération des restaurants", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := validID(c)
	if !ok {
		return
	}

	rest, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, "get_failed", "Erreur lors de la récupération du restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": rest})
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "invalid_request", "Données du restaurant invalides", err)
		return
	}

	rest := models.Restaurant{
		Name:        req.Name,
		Category:    req.Category,
		Rating:      *req.Rating,
		Time:        *req.Time,
		DeliveryFee: *req.DeliveryFee,
		Promo:       req.Promo,
		Color1:      req.Color1,
		Color2:      req.Color2,
		Image:       req.Image,
	}

	if err := h.repo.Create(c.Request.Context(), &rest); err != nil {
		writeRepoError(c, err, "create_failed", "Erreur lors de la création du restaurant")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Restaurant créé avec succès",
		"restaurant": rest,
	})
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := validID(c)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "invalid_request", "Données du restaurant invalides", err)
		return
	}

	ctx := c.Request.Context()

	rest, err := h.repo.Get(ctx, id)
	if err != nil {
		writeRepoError(c, err, "update_failed", "Erreur lors de la mise à jour du restaurant")
		return
	}

	req.applyTo(rest)

	if err := h.repo.Update(ctx, rest); err != nil {
		writeRepoError(c, err, "update_failed", "Erreur lors de la mise à jour du restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant mis à jour avec succès",
		"restaurant": rest,
	})
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := validID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, "delete_failed", "Erreur lors de la suppression du restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant supprimé avec succès"})
}
