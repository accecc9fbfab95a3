package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakil-dev/summer-camp-api/internal/auth"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

// Store is the per-collection data access surface. repository.Collection
// satisfies it; tests substitute mocks.
type Store[T any] interface {
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error)
	InsertOne(ctx context.Context, doc T) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update bson.M, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// IntentCreator is the payment gateway surface the handlers depend on.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type Handler struct {
	Users    Store[models.User]
	Classes  Store[models.Class]
	Cards    Store[models.ClassCard]
	Payments Store[models.Payment]
	Tokens   *auth.TokenService
	Gateway  IntentCreator
}

func NewHandler(
	users Store[models.User],
	classes Store[models.Class],
	cards Store[models.ClassCard],
	payments Store[models.Payment],
	tokens *auth.TokenService,
	gateway IntentCreator,
) *Handler {
	return &Handler{
		Users:    users,
		Classes:  classes,
		Cards:    cards,
		Payments: payments,
		Tokens:   tokens,
		Gateway:  gateway,
	}
}

// Home is the health/root route.
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Summer Camp Server is running........")
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": true, "message": message})
}

// objectIDParam parses the :id path parameter, responding 400 on bad input.
func objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}
