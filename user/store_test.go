package user

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestInsertErrorMapsDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}

	appErr := insertError("user@example.com", dup)
	if appErr.ErrorCode != "DUPLICATE_VALUE" {
		t.Errorf("errorCode = %s, want DUPLICATE_VALUE", appErr.ErrorCode)
	}
	if appErr.Status != 409 {
		t.Errorf("status = %d, want 409", appErr.Status)
	}
}

func TestInsertErrorOtherFailuresAreInternal(t *testing.T) {
	appErr := insertError("user@example.com", errors.New("connection reset"))
	if appErr.ErrorCode != "INTERNAL_SERVER_ERROR" {
		t.Errorf("errorCode = %s, want INTERNAL_SERVER_ERROR", appErr.ErrorCode)
	}
}
