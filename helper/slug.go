package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"movie_catalog/model"
)

// GenerateUniqueMovieSlug derives a slug from title and appends -1, -2, …
// until no other movie holds it. excludeId skips the movie's own row so a
// title update that keeps the same slug does not get suffixed.
func GenerateUniqueMovieSlug(tx *gorm.DB, title string, excludeId uint) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Movie{}).Where("slug = ?", result)
		if excludeId != 0 {
			query = query.Where("id != ?", excludeId)
		}
		query.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
