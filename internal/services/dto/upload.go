package dto

// UploadResponse mirrors what the admin panel expects after a media upload.
// Path and URL carry the same reference; older frontend code reads either.
type UploadResponse struct {
	Message  string `json:"message"`
	Path     string `json:"path"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
