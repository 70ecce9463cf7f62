package http

import (
	"context"

	"github.com/GoSim-25-26J-441/project-relay/internal/projects/domain"
	"github.com/gin-gonic/gin"
)

// Store is the document store the handlers forward to.
type Store interface {
	Create(ctx context.Context, p domain.ProjectRequest) (*domain.ProjectResponse, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, p domain.ProjectRequest) (*domain.ProjectResponse, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store Store
}

func New(store Store) *Handler {
	return &Handler{store: store}
}

const (
	messageSuccess = "success"
	messageFailure = "failure"
)

// APIResponse is the envelope wrapped around every project response.
// On failure Data holds the error string.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{Status: status, Message: messageSuccess, Data: data})
}

func respondFailure(c *gin.Context, status int, err error) {
	c.JSON(status, APIResponse{Status: status, Message: messageFailure, Data: err.Error()})
}
