// Package response defines the wire shapes of the API boundary. The shapes
// are a compatibility contract with existing consumers and must not change:
// errors carry a message plus the literal string "false" in status, auth
// success carries {user, token}, and job writes answer with store-style
// acknowledgements.
package response

import (
	"net/http"
	"time"

	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// AccountView is the hash-free projection of an account returned to clients.
type AccountView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthBody is the success payload shared by registration and login.
type AuthBody struct {
	User  AccountView `json:"user"`
	Token string      `json:"token"`
}

// InsertAck acknowledges an insert.
type InsertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateAck acknowledges an update. UpsertedID is set only when the update
// created a new record through the upsert path.
type UpdateAck struct {
	Acknowledged  bool    `json:"acknowledged"`
	ModifiedCount int     `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId,omitempty"`
}

// DeleteAck acknowledges a delete.
type DeleteAck struct {
	Acknowledged bool `json:"acknowledged"`
	DeletedCount int  `json:"deletedCount"`
}

// Error writes the uniform error payload.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Status:  "false",
	})
}

// Auth writes the {user, token} payload for a fresh authentication.
func Auth(c echo.Context, account *entity.Account, token string) error {
	return c.JSON(http.StatusOK, AuthBody{
		User:  NewAccountView(account),
		Token: token,
	})
}

// NewAccountView maps an account entity to its client projection.
func NewAccountView(account *entity.Account) AccountView {
	return AccountView{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

// Inserted writes an insert acknowledgement.
func Inserted(c echo.Context, insertedID string) error {
	return c.JSON(http.StatusOK, InsertAck{
		Acknowledged: true,
		InsertedID:   insertedID,
	})
}

// Updated writes an update acknowledgement for an in-place overwrite.
func Updated(c echo.Context) error {
	return c.JSON(http.StatusOK, UpdateAck{
		Acknowledged:  true,
		ModifiedCount: 1,
	})
}

// Upserted writes an update acknowledgement for the insert-on-missing path.
func Upserted(c echo.Context, upsertedID string) error {
	return c.JSON(http.StatusOK, UpdateAck{
		Acknowledged: true,
		UpsertedID:   &upsertedID,
	})
}

// Deleted writes a delete acknowledgement.
func Deleted(c echo.Context) error {
	return c.JSON(http.StatusOK, DeleteAck{
		Acknowledged: true,
		DeletedCount: 1,
	})
}
