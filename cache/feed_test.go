package cache

import (
	"context"
	"testing"

	"github.com/SiddheshKanawade/news-hub-backend/model"
)

func TestGetFeedRejectsUnknownCategory(t *testing.T) {
	// The category maps straight to a collection name; nothing outside the
	// configured set may reach the store. The nil database proves no store
	// access happens on the rejection path.
	s := NewFeedStore(nil, []string{"general", "sports"})

	for _, category := range []string{"users", "metadata", "spo$rts", "Sports"} {
		_, _, err := s.GetFeed(context.Background(), []string{"wire"}, category)
		if err == nil {
			t.Fatalf("category %q accepted, want rejection", category)
		}
		if appErr := model.AsAppError(err); appErr.ErrorCode != "BAD_REQUEST" {
			t.Errorf("category %q: errorCode = %s, want BAD_REQUEST", category, appErr.ErrorCode)
		}
	}
}
