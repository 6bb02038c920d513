package helper

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/rs/zerolog/log"
)

// InitCloudinary builds the upload client from CLOUDINARY_* variables.
// Returns nil when they are absent; the poster endpoint then rejects uploads.
func InitCloudinary() *cloudinary.Cloudinary {
	name := os.Getenv("CLOUDINARY_CLOUD_NAME")
	key := os.Getenv("CLOUDINARY_API_KEY")
	secret := os.Getenv("CLOUDINARY_API_SECRET")

	if name == "" || key == "" || secret == "" {
		log.Warn().Msg("cloudinary not configured, poster uploads disabled")
		return nil
	}

	cld, err := cloudinary.NewFromParams(name, key, secret)
	if err != nil {
		log.Error().Err(err).Msg("cloudinary init failed")
		return nil
	}
	return cld
}
