package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"unicode"

	"agro-marketplace/internal/data/entity"
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/internal/dto/response"
	"agro-marketplace/pkg/utils"

	"github.com/gabriel-vasile/mimetype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultImageContentType = "image/jpeg"

var errMalformedDataURI = errors.New("data URI has no payload separator")

type ImageService interface {
	Get(ctx context.Context, id string) (*response.ImageContent, error)
}

type imageService struct {
	imageRepo repository.ImageRepository
	log       *zap.Logger
}

func NewImageService(imageRepo repository.ImageRepository, log *zap.Logger) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		log:       log,
	}
}

func (is *imageService) Get(ctx context.Context, id string) (*response.ImageContent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrValidation("Invalid image ID format", nil)
	}

	img, err := is.imageRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, utils.ErrInternal("Error retrieving image", err)
	}
	if img == nil {
		return nil, utils.ErrNotFound("Image not found")
	}

	content, err := ResolveImage(img)
	if err != nil {
		if !utils.IsKind(err, utils.KindNotFound) {
			is.log.Error("Failed to decode image", zap.Error(err), zap.String("image_id", id))
		}
		return nil, err
	}

	return content, nil
}

// ResolveImage picks the payload of an image document. A binary payload wins
// over the legacy base64 field; a document with neither is not found.
func ResolveImage(img *entity.Image) (*response.ImageContent, error) {
	switch {
	case img.HasData:
		contentType := img.ContentType
		if contentType == "" {
			contentType = sniffImageType(img.Data)
		}
		return &response.ImageContent{Data: img.Data, ContentType: contentType}, nil

	case img.HasEncoded:
		data, contentType, err := DecodeBase64Image(img.Encoded)
		if err != nil {
			return nil, utils.ErrInternal("Error retrieving image", err)
		}
		return &response.ImageContent{Data: data, ContentType: contentType}, nil

	default:
		return nil, utils.ErrNotFound("No image data found")
	}
}

// DecodeBase64Image decodes a base64 string with an optional
// "data:<mime>;base64," prefix. The prefix, when present, names the content type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	contentType := ""
	payload := encoded

	if strings.HasPrefix(payload, "data:") {
		header, rest, found := strings.Cut(payload, ",")
		if !found {
			return nil, "", errMalformedDataURI
		}
		mediaType, _, _ := strings.Cut(strings.TrimPrefix(header, "data:"), ";")
		contentType = strings.TrimSpace(mediaType)
		payload = rest
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, "", err
	}

	if contentType == "" {
		contentType = sniffImageType(data)
	}

	return data, contentType, nil
}

// decodeBase64 ignores whitespace and accepts padded or unpadded input
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

func sniffImageType(data []byte) string {
	if len(data) == 0 {
		return defaultImageContentType
	}
	if mime := mimetype.Detect(data).String(); strings.HasPrefix(mime, "image/") {
		return mime
	}
	return defaultImageContentType
}
