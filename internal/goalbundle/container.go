package goalbundle

import "github.com/ducnmm/studyvault/internal/user"

type GoalBundleContainer struct {
	Handler *Handler
	Service GoalBundleService
}

func NewGoalBundleContainer(userRepo user.UserRepository) *GoalBundleContainer {
	service := NewService()
	handler := NewHandler(service, userRepo)

	return &GoalBundleContainer{
		Handler: handler,
		Service: service,
	}
}
