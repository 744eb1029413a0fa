package response_models

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryDeletedResponse struct {
	Name string `json:"category deleted"`
}
