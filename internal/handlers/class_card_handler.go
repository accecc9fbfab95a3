package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakil-dev/summer-camp-api/internal/middleware"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

// GetMyCards lists the caller's cart. Callers may only ask about themselves.
func (h *Handler) GetMyCards(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.ClassCard{})
		return
	}
	if email != c.GetString(middleware.EmailKey) {
		respondError(c, http.StatusForbidden, "forbidden access")
		return
	}

	cards, err := h.Cards.Find(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve cart")
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetSingleCard fetches one cart item; a missing card resolves to a null
// body, not a 404.
func (h *Handler) GetSingleCard(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	card, err := h.Cards.FindOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve cart item")
		return
	}
	c.JSON(http.StatusOK, card)
}

type addToClassRequest struct {
	SelectedClassID string  `json:"selectedClassId" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"`
}

// AddToClass inserts a cart item unless one already exists for the same
// selectedClassId. The check and the insert are a single conditional upsert,
// so concurrent duplicates cannot slip through.
func (h *Handler) AddToClass(c *gin.Context) {
	var req addToClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	card := models.ClassCard{
		ID:              primitive.NewObjectID(),
		SelectedClassID: req.SelectedClassID,
		Email:           req.Email,
		Name:            req.Name,
		Image:           req.Image,
		Price:           req.Price,
	}

	result, err := h.Cards.UpdateOne(
		c.Request.Context(),
		bson.M{"selectedClassId": card.SelectedClassID},
		bson.M{"$setOnInsert": card},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to add class to cart")
		return
	}

	if result.UpsertedCount == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "This class already exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": result.UpsertedID})
}

// DeleteCard removes a cart item.
func (h *Handler) DeleteCard(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.Cards.DeleteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}
