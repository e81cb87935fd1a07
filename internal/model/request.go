package model

import "mime/multipart"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ImageUpload pairs a multipart file with its header so services can hand it
// to the image store without touching the request.
type ImageUpload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

type ProductTypeInput struct {
	Name        string
	Description string
	Image       *ImageUpload
}

type ProductInput struct {
	Name          string
	Quantity      int
	Description   string
	SerialNumber  string
	HasSold       bool
	ProductTypeID string
	Image         *ImageUpload
}
