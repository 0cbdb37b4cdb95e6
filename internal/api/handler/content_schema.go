package handler

type favoriteRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}

type downloadRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}
