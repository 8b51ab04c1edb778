package dto

import (
	"jobport/internal/domain/job"
	"jobport/internal/usecase"
)

type JobsPage struct {
	Jobs       []job.Listing      `json:"jobs"`
	Pagination usecase.Pagination `json:"pagination"`
}
