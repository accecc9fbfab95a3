package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakil-dev/summer-camp-api/internal/middleware"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

// GetMyPayments lists the caller's payments, newest first. Callers may only
// ask about themselves.
func (h *Handler) GetMyPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.Payment{})
		return
	}
	if email != c.GetString(middleware.EmailKey) {
		respondError(c, http.StatusForbidden, "forbidden access")
		return
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	payments, err := h.Payments.Find(c.Request.Context(), bson.M{"email": email}, findOptions)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment records a payment, enrolls the student into the class (one
// atomic seats/enrolled adjustment) and clears the cart item. The three
// operations are not transactional: the payment record is the critical step,
// and any follow-up failure is logged and reported back instead of being
// passed off as full success.
func (h *Handler) CreatePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	classID, err := primitive.ObjectIDFromHex(payment.MenuItems)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid class id")
		return
	}
	cardID, err := primitive.ObjectIDFromHex(payment.CartItems)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid cart item id")
		return
	}

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()

	insertResult, err := h.Payments.InsertOne(c.Request.Context(), payment)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to record payment")
		return
	}

	var partialFailures []string

	updateResult, err := h.Classes.UpdateByID(c.Request.Context(), classID,
		bson.M{"$inc": bson.M{"seats": -1, "enrolled": 1}})
	if err != nil {
		log.Printf("payment %s: failed to update class %s enrollment: %v", payment.ID.Hex(), payment.MenuItems, err)
		partialFailures = append(partialFailures, "class enrollment update failed")
	}

	deleteResult, err := h.Cards.DeleteByID(c.Request.Context(), cardID)
	if err != nil {
		log.Printf("payment %s: failed to delete cart item %s: %v", payment.ID.Hex(), payment.CartItems, err)
		partialFailures = append(partialFailures, "cart item deletion failed")
	}

	response := gin.H{"insertedId": insertResult.InsertedID}
	if updateResult != nil {
		response["modifiedCount"] = updateResult.ModifiedCount
	}
	if deleteResult != nil {
		response["deletedCount"] = deleteResult.DeletedCount
	}
	if len(partialFailures) > 0 {
		response["partialFailures"] = partialFailures
	}

	c.JSON(http.StatusOK, response)
}

type paymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the payment gateway for a client secret the
// frontend uses to complete the card payment.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "a positive price is required")
		return
	}

	clientSecret, err := h.Gateway.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		log.Printf("payment intent creation failed: %v", err)
		respondError(c, http.StatusBadGateway, "payment processor is unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
