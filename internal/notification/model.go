package notification

import "time"

type Notification struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"` // NEW_ORDER | ORDER_STATUS | ORDER_CANCELLED | NEW_REVIEW
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
