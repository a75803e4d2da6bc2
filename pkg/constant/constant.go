package constant

import "time"

const (
	BcryptCost        = 12
	MinPasswordLength = 9

	DefaultAccessExpiryMin  = 60
	DefaultRefreshExpiryMin = 7 * 24 * 60

	DefaultDatabase = "sample_mflix"

	UsersCollection    = "users"
	SessionsCollection = "sessions"
	MoviesCollection   = "movies"
	TheatersCollection = "theaters"
	CommentsCollection = "comments"

	DefaultMovieListLimit = 20

	MongoConnectTimeout = 10 * time.Second
)
