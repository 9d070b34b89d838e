package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var embeddedFixtures []byte

// Fixtures is the catalog seed document. Videos, repositories and questions
// name their parent by natural key rather than id.
type Fixtures struct {
	Languages     []LanguageFixture      `yaml:"languages"`
	JobRoles      []string               `yaml:"jobRoles"`
	Documentation []DocumentationFixture `yaml:"documentation"`
	Videos        []VideoFixture         `yaml:"videos"`
	Repositories  []RepositoryFixture    `yaml:"repositories"`
	Questions     []QuestionFixture      `yaml:"questions"`
}

type FeatureFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type LanguageFixture struct {
	LanguageType      string           `yaml:"languageType"`
	LanguageExtension string           `yaml:"languageExtension"`
	AppIcon           string           `yaml:"appIcon"`
	ApplicationName   string           `yaml:"applicationName"`
	AppStoreLink      string           `yaml:"appStoreLink"`
	BannerImage       string           `yaml:"bannerImage"`
	Description       []string         `yaml:"description"`
	PlaystoreLink     string           `yaml:"playstoreLink"`
	Images            []string         `yaml:"images"`
	QRImage           string           `yaml:"qrImage"`
	Features          []FeatureFixture `yaml:"features"`
}

type DocumentationFixture struct {
	Title      string   `yaml:"title"`
	Content    []string `yaml:"content"`
	Popularity int      `yaml:"popularity"`
}

type VideoFixture struct {
	Title    string `yaml:"title"`
	Duration string `yaml:"duration"`
	Level    string `yaml:"level"`
	Language string `yaml:"language"`
	URL      string `yaml:"url"`
	Image    string `yaml:"image"`
}

type RepositoryFixture struct {
	Title       string `yaml:"title"`
	Language    string `yaml:"language"`
	NoOfLessons int    `yaml:"noOfLessons"`
}

type QuestionFixture struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	JobRole  string `yaml:"jobRole"`
	Level    string `yaml:"level"`
}

// loadFixtures parses the file at path, or the embedded document when path is empty.
func loadFixtures(path string) (*Fixtures, error) {
	content := embeddedFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture file: %w", err)
		}
		content = b
	}

	var fx Fixtures
	if err := yaml.Unmarshal(content, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}
