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

// GetAllClasses lists every class, most-enrolled first.
func (h *Handler) GetAllClasses(c *gin.Context) {
	findOptions := options.Find().SetSort(bson.D{{Key: "enrolled", Value: -1}})
	classes, err := h.Classes.Find(c.Request.Context(), bson.M{}, findOptions)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetMyClasses lists classes taught by the given instructor. Callers may only
// ask about themselves.
func (h *Handler) GetMyClasses(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		respondError(c, http.StatusForbidden, "forbidden access")
		return
	}

	classes, err := h.Classes.Find(c.Request.Context(), bson.M{"InstructorEmail": email})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetApprovedClasses lists classes visible to students.
func (h *Handler) GetApprovedClasses(c *gin.Context) {
	classes, err := h.Classes.Find(c.Request.Context(), bson.M{"status": models.StatusApproved})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve classes")
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetFeedback returns the class document carrying the feedback text; a
// missing class resolves to a null body, not a 404.
func (h *Handler) GetFeedback(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	class, err := h.Classes.FindOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve class")
		return
	}
	c.JSON(http.StatusOK, class)
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

// UpsertFeedback attaches feedback text to a class.
func (h *Handler) UpsertFeedback(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Classes.UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"feedback": req.Feedback}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.ModifiedCount, "upsertedCount": result.UpsertedCount})
}

// CreateClass records a new class offering. The approval lifecycle always
// starts at pending.
func (h *Handler) CreateClass(c *gin.Context) {
	var class models.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	class.ID = primitive.NewObjectID()
	if class.Status == "" {
		class.Status = models.StatusPending
	}

	result, err := h.Classes.InsertOne(c.Request.Context(), class)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create class")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

// ApproveClass marks a pending class as approved. Admin only.
func (h *Handler) ApproveClass(c *gin.Context) {
	h.setStatus(c, models.StatusApproved)
}

// DenyClass marks a pending class as denied. Admin only.
func (h *Handler) DenyClass(c *gin.Context) {
	h.setStatus(c, models.StatusDenied)
}

func (h *Handler) setStatus(c *gin.Context, status string) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.Classes.UpdateByID(c.Request.Context(), id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update class status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.ModifiedCount})
}
