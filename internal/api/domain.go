package api

import (
	"github.com/JaimeStill/codynn/internal/docs"
	"github.com/JaimeStill/codynn/internal/jobroles"
	"github.com/JaimeStill/codynn/internal/languages"
	"github.com/JaimeStill/codynn/internal/questions"
	"github.com/JaimeStill/codynn/internal/repositories"
	"github.com/JaimeStill/codynn/internal/videos"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Languages     languages.System
	Repositories  repositories.System
	Videos        videos.System
	Documentation docs.System
	JobRoles      jobroles.System
	Questions     questions.System
}

// NewDomain creates all domain systems from the API runtime.
// Catalog entries that reference a language or job role receive the
// owning system so they can resolve references before writing.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	languagesSys := languages.New(db, runtime.Logger, runtime.Pagination)
	jobRolesSys := jobroles.New(db, runtime.Logger, runtime.Pagination)

	return &Domain{
		Languages:     languagesSys,
		Repositories:  repositories.New(languagesSys, db, runtime.Logger, runtime.Pagination),
		Videos:        videos.New(languagesSys, db, runtime.Logger, runtime.Pagination),
		Documentation: docs.New(db, runtime.Logger, runtime.Pagination),
		JobRoles:      jobRolesSys,
		Questions:     questions.New(jobRolesSys, db, runtime.Logger, runtime.Pagination),
	}
}
