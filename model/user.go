package model

import "time"

// User is an account document in the users collection. Email is the unique
// key. FeedSources is the set of provider source names the user follows;
// the feed query layer consumes it as a filter.
type User struct {
	Username       string    `json:"username,omitempty" bson:"username,omitempty"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"hashedPassword"`
	FeedSources    []string  `json:"feedSources,omitempty" bson:"feedSources,omitempty"`
	IsVerified     bool      `json:"isVerified" bson:"isVerified"`
	Disabled       bool      `json:"disabled" bson:"disabled"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
