package dto

type UploadAssetResponse struct {
	URL string `json:"url"`
}

type DeleteAssetRequest struct {
	URL string `json:"url" validate:"required,url"`
}
