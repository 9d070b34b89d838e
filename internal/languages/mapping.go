package languages

import (
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

var projection = query.NewProjectionMap("public", "languages", "l").
	Project("id", "Id").
	Project("language_type", "LanguageType").
	Project("language_extension", "LanguageExtension").
	Project("app_icon", "AppIcon").
	Project("application_name", "ApplicationName").
	Project("app_store_link", "AppStoreLink").
	Project("banner_image", "BannerImage").
	Project("description", "Description").
	Project("playstore_link", "PlaystoreLink").
	Project("images", "Images").
	Project("qr_image", "QRImage").
	Project("features", "Features").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "Id"},
}

var sortOptions = query.SortOptions{
	"alphabetical": {{Field: "LanguageType"}},
}

var searchFields = []string{"LanguageType", "ApplicationName"}

const returning = `id, language_type, language_extension, app_icon, application_name,
	app_store_link, banner_image, description, playstore_link, images, qr_image,
	features, created_at, updated_at`

func scanLanguage(s repository.Scanner) (Language, error) {
	var (
		l           Language
		description repository.JSON[[]string]
		images      repository.JSON[[]string]
		features    repository.JSON[[]Feature]
	)
	err := s.Scan(
		&l.ID,
		&l.LanguageType,
		&l.LanguageExtension,
		&l.AppIcon,
		&l.ApplicationName,
		&l.AppStoreLink,
		&l.BannerImage,
		&description,
		&l.PlaystoreLink,
		&images,
		&l.QRImage,
		&features,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	l.Description = description.V
	l.Images = images.V
	l.Features = features.V
	return l, err
}
