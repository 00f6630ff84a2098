package probe

// BuildPayload assembles the request body. It never fails and does not
// validate the literal values.
func BuildPayload(img *EncodedImage, cfg PayloadConfig) *Payload {
	categories := make([]int, len(cfg.Categories))
	copy(categories, cfg.Categories)

	return &Payload{
		ProductID: cfg.ProductID,
		Prompt:    cfg.Prompt,
		Image: ImageBlock{
			Base64:   img.Base64,
			MimeType: img.MimeType,
			FileName: img.FileName,
		},
		Metadata: Metadata{
			SourceImageID: cfg.SourceImageID,
			Categories:    categories,
			ProductSKU:    cfg.ProductSKU,
		},
	}
}
