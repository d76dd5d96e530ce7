package services

import "backend/utils"

// ImageStore persists uploaded images somewhere and hands back a
// public URL for the stored object.
type ImageStore interface {
	Upload(img *utils.ParsedImage, filenamePrefix string) (string, error)
}

// S3ImageStore is the production store; utils.InitS3 must have run.
type S3ImageStore struct{}

func (S3ImageStore) Upload(img *utils.ParsedImage, filenamePrefix string) (string, error) {
	return utils.UploadImageToS3(img, filenamePrefix)
}
