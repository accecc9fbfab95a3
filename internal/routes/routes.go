package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shakil-dev/summer-camp-api/internal/auth"
	"github.com/shakil-dev/summer-camp-api/internal/handlers"
	"github.com/shakil-dev/summer-camp-api/internal/middleware"
)

// Setup wires every route through one of three capability groups: public,
// authenticated, or authenticated+admin. Self-match checks live in the
// handlers since they compare request data against the token claim.
func Setup(r *gin.Engine, h *handlers.Handler, tokens *auth.TokenService) {
	// public
	r.GET("/", h.Home)
	r.POST("/jwt", h.IssueToken)
	r.GET("/allClasses", h.GetAllClasses)
	r.GET("/approvedClass", h.GetApprovedClasses)
	r.GET("/feedback/:id", h.GetFeedback)
	r.PUT("/feedback/:id", h.UpsertFeedback)
	r.POST("/addedClass", h.CreateClass)
	r.GET("/singleClass/:id", h.GetSingleCard)
	r.POST("/addToClass", h.AddToClass)
	r.GET("/instructors", h.GetInstructors)
	r.POST("/users", h.CreateUser)

	// authenticated
	authed := r.Group("", middleware.RequireAuth(tokens))
	{
		authed.GET("/myPaymentClass", h.GetMyPayments)
		authed.POST("/payments", h.CreatePayment)
		authed.POST("/create-payment-intent", h.CreatePaymentIntent)
		authed.GET("/myAddedClass", h.GetMyCards)
		authed.DELETE("/deleteToClass/:id", h.DeleteCard)
		authed.GET("/myClass/:email", h.GetMyClasses)
		authed.GET("/users/admin/:email", h.CheckAdmin)
		authed.GET("/users/instructors/:email", h.CheckInstructor)
	}

	// authenticated + admin
	admin := authed.Group("", middleware.RequireAdmin(h.Users))
	{
		admin.GET("/users", h.GetUsers)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.PATCH("/users/admin/:id", h.PromoteAdmin)
		admin.PATCH("/users/instructors/:id", h.PromoteInstructor)
		admin.PATCH("/approved/:id", h.ApproveClass)
		admin.PATCH("/denied/:id", h.DenyClass)
	}
}
