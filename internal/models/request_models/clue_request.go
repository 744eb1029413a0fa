package request_models

type CreateClueRequest struct {
	Answer     string `json:"answer" binding:"required"`
	Question   string `json:"question" binding:"required"`
	Value      *int   `json:"value" binding:"required"`
	CategoryID *uint  `json:"category_id" binding:"required,min=1"`
}

// UpdateClueRequest carries only the fields to change; nil means leave as is.
type UpdateClueRequest struct {
	Answer     *string `json:"answer" binding:"omitempty,min=1"`
	Question   *string `json:"question" binding:"omitempty,min=1"`
	Value      *int    `json:"value"`
	CategoryID *uint   `json:"category_id" binding:"omitempty,min=1"`
}

func (r UpdateClueRequest) IsEmpty() bool {
	return r.Answer == nil && r.Question == nil && r.Value == nil && r.CategoryID == nil
}

type ClueIDParam struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

type ListCluesQuery struct {
	Count  *int  `form:"count" binding:"omitempty,min=1,max=100"`
	Random *bool `form:"random"`
}
