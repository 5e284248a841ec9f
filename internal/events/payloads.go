package events

import "time"

type UserCreated struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductViewed struct {
	ProductID string  `json:"productId"`
	Delta     float64 `json:"delta"`
}
