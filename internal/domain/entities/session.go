package entities

import "time"

// Session is a signed-in mobile session persisted by this service.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//
// Token is the upstream medical API bearer token obtained at login; it never
// leaves this service. The mobile client only holds the JWT wrapping the
// session id.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
