package response

// ImageContent is a resolved image ready to be written as a raw body
type ImageContent struct {
	Data        []byte
	ContentType string
}
