package kvstore

import "errors"

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("kvstore: key not found")

type KVStore interface {
	Get(key string) (string, error)
	Set(key string, value interface{}) error
	Delete(key string) error
	Keys(pattern string) ([]string, error)
	RPush(key string, values ...interface{}) error
	LRange(key string, start, stop int64) ([]string, error)
	LRem(key string, count int64, value interface{}) error
}
