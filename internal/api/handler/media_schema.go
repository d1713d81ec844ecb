package handler

type imageUploadResponse struct {
	Success      bool   `json:"success"`
	ImageID      string `json:"imageId"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

type videoUploadResponse struct {
	Success      bool   `json:"success"`
	VideoID      string `json:"videoId"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}
