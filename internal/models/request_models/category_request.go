package request_models

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CategoryIDParam struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

type ListCategoriesQuery struct {
	Count *int `form:"count" binding:"omitempty,min=1,max=100"`
}
