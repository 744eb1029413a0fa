package response_models

type ClueResponse struct {
	ID         uint   `json:"id"`
	Answer     string `json:"answer"`
	Question   string `json:"question"`
	Value      int    `json:"value"`
	CategoryID uint   `json:"category_id"`
}

type ClueDeletedResponse struct {
	Answer string `json:"clue deleted"`
}
