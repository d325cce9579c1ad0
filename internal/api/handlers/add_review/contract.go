package add_review

import (
	"context"

	addReview "github.com/ElizarovAleksey/Banketam.net/internal/usecase/add_review"
)

type AddReviewUseCase interface {
	Execute(ctx context.Context, req *addReview.Request) (*addReview.Response, error)
	GetForm(ctx context.Context, bookingID, userID int64) (*addReview.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
