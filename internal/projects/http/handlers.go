package http

import (
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/project-relay/internal/projects/domain"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// pathID returns the trimmed :id parameter or ErrInvalidID when it is blank.
func pathID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if err := validation.Validate(id, validation.Required); err != nil {
		return "", domain.ErrInvalidID
	}
	return id, nil
}

// projectBody is the inbound create/update payload. Both fields must be
// present; empty strings are forwarded unchanged.
type projectBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (b *projectBody) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Name, validation.NotNil),
		validation.Field(&b.Description, validation.NotNil),
	)
}

func bindProject(c *gin.Context) (domain.ProjectRequest, error) {
	var body projectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		return domain.ProjectRequest{}, err
	}
	if err := body.Validate(); err != nil {
		return domain.ProjectRequest{}, err
	}
	return domain.ProjectRequest{Name: *body.Name, Description: *body.Description}, nil
}

func (h *Handler) create(c *gin.Context) {
	req, err := bindProject(c)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c, http.StatusAccepted, res)
}

func (h *Handler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, err)
		return
	}

	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c, http.StatusAccepted, p)
}

func (h *Handler) update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, err)
		return
	}

	req, err := bindProject(c)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, err)
		return
	}

	res, err := h.store.Update(c.Request.Context(), id, req)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c, http.StatusAccepted, res)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, err)
		return
	}

	msg, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, http.StatusInternalServerError, err)
		return
	}

	respondSuccess(c, http.StatusAccepted, msg)
}
