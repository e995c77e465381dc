package routers

import (
	"carepulse-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *users.UserController) {
	router.Post("/", userController.CreateUser)
	router.Get("/{userID}", userController.GetUserByID)
}
