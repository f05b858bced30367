package handler

type createArticleRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Content string   `json:"content" validate:"required"`
	Image   string   `json:"image"   validate:"omitempty,url"`
	Tags    []string `json:"tags"`
}

// updateArticleRequest carries a partial edit; absent fields stay unchanged.
type updateArticleRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Image   *string   `json:"image"`
	Tags    *[]string `json:"tags"`
}

type deletedResponse struct {
	Message string `json:"message"`
}
