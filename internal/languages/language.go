// Package languages manages programming-language profiles. Videos and
// repositories reference a language by id, so a language cannot be removed
// while either still points at it.
package languages

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Feature is a titled highlight shown on a language's profile.
type Feature struct {
	FeatureTitle       string `json:"featureTitle"`
	FeatureDescription string `json:"featureDescription"`
}

// Language is a programming-language profile with its companion app metadata.
type Language struct {
	ID                uuid.UUID `json:"id"`
	LanguageType      string    `json:"languageType"`
	LanguageExtension string    `json:"languageExtension"`
	AppIcon           string    `json:"appIcon"`
	ApplicationName   string    `json:"applicationName"`
	AppStoreLink      string    `json:"appStoreLink"`
	BannerImage       string    `json:"bannerImage"`
	Description       []string  `json:"description"`
	PlaystoreLink     string    `json:"playstoreLink"`
	Images            []string  `json:"images"`
	QRImage           string    `json:"qrImage"`
	Features          []Feature `json:"features"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateCommand contains the data required to create a language.
type CreateCommand struct {
	LanguageType      string    `json:"languageType"`
	LanguageExtension string    `json:"languageExtension"`
	AppIcon           string    `json:"appIcon"`
	ApplicationName   string    `json:"applicationName"`
	AppStoreLink      string    `json:"appStoreLink"`
	BannerImage       string    `json:"bannerImage"`
	Description       []string  `json:"description"`
	PlaystoreLink     string    `json:"playstoreLink"`
	Images            []string  `json:"images"`
	QRImage           string    `json:"qrImage"`
	Features          []Feature `json:"features"`
}

// Validate reports every missing required field in a single ErrValidation.
func (c *CreateCommand) Validate() error {
	var problems []string

	if blank(c.LanguageType) {
		problems = append(problems, "languageType is required")
	}
	if blank(c.AppIcon) {
		problems = append(problems, "appIcon is required")
	}
	if blank(c.ApplicationName) {
		problems = append(problems, "applicationName is required")
	}
	problems = append(problems, checkLines("description", c.Description)...)
	problems = append(problems, checkLines("images", c.Images)...)
	problems = append(problems, checkFeatures(c.Features)...)

	return validationError(problems)
}

// UpdateCommand carries a partial update. Nil fields keep their stored value.
type UpdateCommand struct {
	LanguageType      *string    `json:"languageType"`
	LanguageExtension *string    `json:"languageExtension"`
	AppIcon           *string    `json:"appIcon"`
	ApplicationName   *string    `json:"applicationName"`
	AppStoreLink      *string    `json:"appStoreLink"`
	BannerImage       *string    `json:"bannerImage"`
	Description       *[]string  `json:"description"`
	PlaystoreLink     *string    `json:"playstoreLink"`
	Images            *[]string  `json:"images"`
	QRImage           *string    `json:"qrImage"`
	Features          *[]Feature `json:"features"`
}

// Validate checks that provided required fields are not blanked out.
func (c *UpdateCommand) Validate() error {
	var problems []string

	if c.LanguageType != nil && blank(*c.LanguageType) {
		problems = append(problems, "languageType cannot be empty")
	}
	if c.AppIcon != nil && blank(*c.AppIcon) {
		problems = append(problems, "appIcon cannot be empty")
	}
	if c.ApplicationName != nil && blank(*c.ApplicationName) {
		problems = append(problems, "applicationName cannot be empty")
	}
	if c.Description != nil {
		problems = append(problems, checkLines("description", *c.Description)...)
	}
	if c.Images != nil {
		problems = append(problems, checkLines("images", *c.Images)...)
	}
	if c.Features != nil {
		problems = append(problems, checkFeatures(*c.Features)...)
	}

	return validationError(problems)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkLines(field string, lines []string) []string {
	if len(lines) == 0 {
		return []string{field + " requires at least one entry"}
	}
	var problems []string
	for i, line := range lines {
		if blank(line) {
			problems = append(problems, fmt.Sprintf("%s[%d] is required", field, i))
		}
	}
	return problems
}

func checkFeatures(features []Feature) []string {
	if len(features) == 0 {
		return []string{"features requires at least one entry"}
	}
	var problems []string
	for i, f := range features {
		if blank(f.FeatureTitle) {
			problems = append(problems, fmt.Sprintf("features[%d].featureTitle is required", i))
		}
		if blank(f.FeatureDescription) {
			problems = append(problems, fmt.Sprintf("features[%d].featureDescription is required", i))
		}
	}
	return problems
}

func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
}
