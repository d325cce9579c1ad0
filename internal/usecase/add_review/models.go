package add_review

import "time"

// Request модель запроса на добавление отзыва
type Request struct {
	BookingID int64  // ID заявки
	UserID    int64  // ID пользователя, оставляющего отзыв
	Rating    int    // Оценка от 1 до 5
	Text      string // Текст отзыва
}

// Response модель ответа с созданным отзывом
type Response struct {
	ID        int64     // ID созданного отзыва
	BookingID int64     // ID заявки
	UserID    int64     // ID автора
	Rating    int       // Оценка
	Text      string    // Текст отзыва
	CreatedAt time.Time // Время создания
}

// FormResponse данные для формы отзыва: заявка и возможность оставить отзыв
type FormResponse struct {
	BookingID     int64     // ID заявки
	Status        string    // Статус заявки
	StartDateTime time.Time // Дата и время банкета
	CanReview     bool      // Можно ли оставить отзыв
	AlreadyHas    bool      // Отзыв уже существует
}
