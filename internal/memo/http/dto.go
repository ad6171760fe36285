package http

import (
	"time"

	"github.com/lsfhq/resource-booking-backend/internal/memo"
)

// MemoResponse is the JSON shape of a memo.
type MemoResponse struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewMemoResponse(m *memo.Memo) MemoResponse {
	return MemoResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Recipient: m.Recipient,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// SendMemoBody is the payload for POST /memos. An empty recipient
// broadcasts to all users.
type SendMemoBody struct {
	Recipient string `json:"recipient"`
	Content   string `json:"content" binding:"required"`
	TTLDays   int    `json:"ttlDays" binding:"omitempty,min=1"`
}
