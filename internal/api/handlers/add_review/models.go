package add_review

import (
	"time"

	addReview "github.com/ElizarovAleksey/Banketam.net/internal/usecase/add_review"
)

// AddReviewRequest тело запроса на добавление отзыва
type AddReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewResponse ответ с созданным отзывом
type ReviewResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewFormResponse данные для формы отзыва
type ReviewFormResponse struct {
	BookingID     int64     `json:"bookingId"`
	Status        string    `json:"status"`
	StartDateTime time.Time `json:"startDateTime"`
	CanReview     bool      `json:"canReview"`
	AlreadyHas    bool      `json:"alreadyHasReview"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP ответ
func FromUseCaseResponse(resp *addReview.Response) ReviewResponse {
	return ReviewResponse{
		ID:        resp.ID,
		BookingID: resp.BookingID,
		Rating:    resp.Rating,
		Text:      resp.Text,
		CreatedAt: resp.CreatedAt,
	}
}

// FromUseCaseFormResponse конвертирует данные формы usecase в HTTP ответ
func FromUseCaseFormResponse(resp *addReview.FormResponse) ReviewFormResponse {
	return ReviewFormResponse{
		BookingID:     resp.BookingID,
		Status:        resp.Status,
		StartDateTime: resp.StartDateTime,
		CanReview:     resp.CanReview,
		AlreadyHas:    resp.AlreadyHas,
	}
}
