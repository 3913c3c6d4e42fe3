package redisrepo

import "fmt"

const (
	AUTHOR_CACHE_KEY = "author-cache:%s" // <userID>
)

func AuthorCacheKey(userID string) string {
	return fmt.Sprintf(AUTHOR_CACHE_KEY, userID)
}
