package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "adivina"

// accountKey returns the Redis key for an Account
func accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, username)
}

// accountsIndexKey returns the Redis key for the SET of all usernames
func accountsIndexKey() string {
	return fmt.Sprintf("%s:idx:accounts", keyPrefix)
}

// gameKey returns the Redis key for a user's Game
func gameKey(username string) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, username)
}
