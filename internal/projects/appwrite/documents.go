package appwrite

import (
	"github.com/GoSim-25-26J-441/project-relay/internal/projects/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// projectDocument is a stored project as the store returns it. Pointer
// fields tell an absent key apart from an empty string.
type projectDocument struct {
	ID          *string `json:"$id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (d *projectDocument) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Name, validation.NotNil),
		validation.Field(&d.Description, validation.NotNil),
	)
}

func (d *projectDocument) project() *domain.Project {
	return &domain.Project{ID: *d.ID, Name: *d.Name, Description: *d.Description}
}

// writeResult is the part of a create/update answer the relay hands back.
type writeResult struct {
	ID           *string `json:"$id"`
	CollectionID *string `json:"$collectionId"`
}

func (w *writeResult) Validate() error {
	return validation.ValidateStruct(w,
		validation.Field(&w.ID, validation.Required),
		validation.Field(&w.CollectionID, validation.Required),
	)
}

func (w *writeResult) response() *domain.ProjectResponse {
	return &domain.ProjectResponse{ID: *w.ID, CollectionID: *w.CollectionID}
}
