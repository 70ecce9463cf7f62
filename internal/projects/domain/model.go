package domain

import "fmt"

// Project is a project document as stored in the document store.
// ID is assigned by the store and left empty on payloads we send.
type Project struct {
	ID          string `json:"$id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectRequest is the create/update payload; it never carries an ID.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectResponse is what the store returns after a write.
type ProjectResponse struct {
	ID           string `json:"$id"`
	CollectionID string `json:"$collectionId"`
}

// Request strips the store-assigned fields from a project.
func (p Project) Request() ProjectRequest {
	return ProjectRequest{Name: p.Name, Description: p.Description}
}

// DeletedMessage is the confirmation returned once a project is removed.
func DeletedMessage(id string) string {
	return fmt.Sprintf("Project with ID: %s deleted successfully!!", id)
}
