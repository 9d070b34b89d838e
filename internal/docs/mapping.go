package docs

import (
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

var projection = query.NewProjectionMap("public", "documentation", "d").
	Project("id", "Id").
	Project("title", "Title").
	Project("content", "Content").
	Project("popularity", "Popularity").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "Id"},
}

var sortOptions = query.SortOptions{
	"alphabetical": {{Field: "Title"}},
	"popularity":   {{Field: "Popularity", Descending: true}},
}

const returning = "id, title, content, popularity, created_at, updated_at"

func scanDocumentation(s repository.Scanner) (Documentation, error) {
	var (
		d       Documentation
		content repository.JSON[[]string]
	)
	err := s.Scan(&d.ID, &d.Title, &content, &d.Popularity, &d.CreatedAt, &d.UpdatedAt)
	d.Content = content.V
	return d, err
}
