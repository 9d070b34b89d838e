package jobroles

import (
	"github.com/JaimeStill/codynn/pkg/query"
	"github.com/JaimeStill/codynn/pkg/repository"
)

var projection = query.NewProjectionMap("public", "job_roles", "j").
	Project("id", "Id").
	Project("name", "Name").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "Id"},
}

var sortOptions = query.SortOptions{
	"alphabetical": {{Field: "Name"}},
}

func scanJobRole(s repository.Scanner) (JobRole, error) {
	var j JobRole
	err := s.Scan(&j.ID, &j.Name, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}
