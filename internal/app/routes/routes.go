package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/controllers"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/metrics"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth     *controllers.AuthController
	Courses  *controllers.CourseController
	Invoices *controllers.InvoiceController
	Overview *controllers.OverviewController
	// Seed is nil when the seed endpoint is disabled
	Seed *controllers.SeedController
}

// PublicPaths skip the authorization gate
var PublicPaths = []string{"/logout", "/healthz", "/metrics"}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
	health gin.HandlerFunc,
) {
	router.GET("/healthz", health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Everything below runs behind the session and gate middleware
	gated := router.Group("")
	gated.Use(authMiddleware.Session(), authMiddleware.Gate())

	gated.GET("/login", ctrl.Auth.LoginPage)
	gated.POST("/login", loginLimiter.Handler(), ctrl.Auth.Login)
	gated.POST("/logout", ctrl.Auth.Logout)

	if ctrl.Seed != nil {
		gated.GET("/seed", ctrl.Seed.Seed)
	}

	gated.GET("/dashboard", ctrl.Courses.Dashboard)

	admin := gated.Group("/admin")
	{
		admin.GET("", ctrl.Overview.Overview)
		admin.GET("/customers", ctrl.Overview.Customers)

		courses := admin.Group("/courses")
		{
			courses.GET("", ctrl.Courses.ListCourses)
			courses.POST("", ctrl.Courses.CreateCourse)
			courses.GET("/:id", ctrl.Courses.GetCourse)
			courses.PUT("/:id", ctrl.Courses.UpdateCourse)
			courses.POST("/:id", ctrl.Courses.UpdateCourse)
			courses.DELETE("/:id", ctrl.Courses.DeleteCourse)
			courses.POST("/:id/delete", ctrl.Courses.DeleteCourse)
		}

		invoices := admin.Group("/invoices")
		{
			invoices.GET("", ctrl.Invoices.ListInvoices)
			invoices.POST("", ctrl.Invoices.CreateInvoice)
			invoices.GET("/:id", ctrl.Invoices.GetInvoice)
			invoices.PUT("/:id", ctrl.Invoices.UpdateInvoice)
			invoices.POST("/:id", ctrl.Invoices.UpdateInvoice)
			invoices.DELETE("/:id", ctrl.Invoices.DeleteInvoice)
			invoices.POST("/:id/delete", ctrl.Invoices.DeleteInvoice)
		}
	}

	router.NoRoute(authMiddleware.Session(), authMiddleware.Gate(), func(c *gin.Context) {
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Page not found").WithDetails(c.Request.URL.Path)
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
	})
}
