package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakil-dev/summer-camp-api/internal/middleware"
	"github.com/shakil-dev/summer-camp-api/internal/models"
)

// GetUsers lists every user. Admin only.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.Find(c.Request.Context(), bson.M{})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetInstructors lists users with the instructors role.
func (h *Handler) GetInstructors(c *gin.Context) {
	users, err := h.Users.Find(c.Request.Context(), bson.M{"role": "instructors"})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to retrieve instructors")
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// CreateUser registers a user on first sign-in; creating the same email twice
// is a no-op.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "a valid email is required")
		return
	}

	existing, err := h.Users.FindOne(c.Request.Context(), bson.M{"email": req.Email})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to look up user")
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	result, err := h.Users.InsertOne(c.Request.Context(), user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": result.InsertedID})
}

// DeleteUser removes a user by id. Admin only.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.Users.DeleteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// CheckAdmin reports whether the given user's stored role is admin. Callers
// may only ask about themselves.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		respondError(c, http.StatusForbidden, "forbidden access")
		return
	}

	user, err := h.Users.FindOne(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to look up user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user != nil && user.Role == "admin"})
}

// CheckInstructor is the instructors counterpart of CheckAdmin.
func (h *Handler) CheckInstructor(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		respondError(c, http.StatusForbidden, "forbidden access")
		return
	}

	user, err := h.Users.FindOne(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to look up user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"instructors": user != nil && user.Role == "instructors"})
}

// PromoteAdmin sets a user's role to admin. Admin only.
func (h *Handler) PromoteAdmin(c *gin.Context) {
	h.setRole(c, "admin")
}

// PromoteInstructor sets a user's role to instructors. Admin only.
func (h *Handler) PromoteInstructor(c *gin.Context) {
	h.setRole(c, "instructors")
}

func (h *Handler) setRole(c *gin.Context, role string) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	result, err := h.Users.UpdateByID(c.Request.Context(), id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.ModifiedCount})
}
