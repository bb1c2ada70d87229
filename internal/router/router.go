package router // package router defines how HTTP routes are registered for the console

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/moviestream/catalog-admin/internal/handler" // import the handlers that implement the console pages
)

// RegisterRoutes registers the health check and the dashboard-independent
// plumbing on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	// The "/healthz" endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterConsole registers every console page on the provided Echo
// instance. Each entity follows the same shape: a list view, a combined
// add/edit form pair (GET renders, POST writes and redirects), and a POST
// delete. Composite-key entities carry both key segments in the path.
func RegisterConsole(e *echo.Echo, h *handler.Console) {
	// Dashboard and reports
	e.GET("/", h.Dashboard)
	e.GET("/reports", h.ReportsPage)

	// Movies
	e.GET("/movies", h.ListMovies)
	e.GET("/movies/add", h.NewMovieForm)
	e.POST("/movies/add", h.CreateMovie)
	e.GET("/movies/edit/:id", h.EditMovieForm)
	e.POST("/movies/edit/:id", h.UpdateMovie)
	e.POST("/movies/delete/:id", h.DeleteMovie)

	// Users
	e.GET("/users", h.ListUsers)
	e.GET("/users/add", h.NewUserForm)
	e.POST("/users/add", h.CreateUser)
	e.GET("/users/edit/:id", h.EditUserForm)
	e.POST("/users/edit/:id", h.UpdateUser)
	e.POST("/users/delete/:id", h.DeleteUser)

	// Genre tags (composite key: movie id + genre label)
	e.GET("/genres", h.ListGenres)
	e.GET("/genres/add", h.NewGenreForm)
	e.POST("/genres/add", h.CreateGenre)
	e.GET("/genres/edit/:movieid/:genre", h.EditGenreForm)
	e.POST("/genres/edit/:movieid/:genre", h.UpdateGenre)
	e.POST("/genres/delete/:movieid/:genre", h.DeleteGenre)

	// Subscriptions
	e.GET("/subscriptions", h.ListSubscriptions)
	e.GET("/subscriptions/add", h.NewSubscriptionForm)
	e.POST("/subscriptions/add", h.CreateSubscription)
	e.GET("/subscriptions/edit/:id", h.EditSubscriptionForm)
	e.POST("/subscriptions/edit/:id", h.UpdateSubscription)
	e.POST("/subscriptions/delete/:id", h.DeleteSubscription)

	// Payments
	e.GET("/payments", h.ListPayments)
	e.GET("/payments/add", h.NewPaymentForm)
	e.POST("/payments/add", h.CreatePayment)
	e.GET("/payments/edit/:id", h.EditPaymentForm)
	e.POST("/payments/edit/:id", h.UpdatePayment)
	e.POST("/payments/delete/:id", h.DeletePayment)

	// Ratings (composite key: movie id + user id)
	e.GET("/ratings", h.ListRatings)
	e.GET("/ratings/add", h.NewRatingForm)
	e.POST("/ratings/add", h.CreateRating)
	e.GET("/ratings/edit/:movieid/:userid", h.EditRatingForm)
	e.POST("/ratings/edit/:movieid/:userid", h.UpdateRating)
	e.POST("/ratings/delete/:movieid/:userid", h.DeleteRating)
}
