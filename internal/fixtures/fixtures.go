// Package fixtures generates in-memory records for tests: users with
// profiles, posts, comments and roles, identified by random UUIDs.
package fixtures

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

var (
	firstNames = []string{"Sam", "Alex", "Jordan", "Robin", "Kim", "Taylor"}
	lastNames  = []string{"Omengo", "Novak", "Ibarra", "Lindqvist", "Tanaka"}
	titles     = []string{"Engineer", "Director", "Analyst", "Designer", "Architect"}
	roles      = []string{"admin", "moderator"}
)

func pick(values []string) string {
	return values[rand.IntN(len(values))]
}

// User returns a user record with id, email and passwordHash.
func User() map[string]any {
	id := uuid.NewString()

	return map[string]any{
		"id":           id,
		"email":        fmt.Sprintf("%s@example.com", id[:8]),
		"passwordHash": uuid.NewString(),
	}
}

// Profile returns a profile record with id, name and surname.
func Profile() map[string]any {
	return map[string]any{
		"id":      uuid.NewString(),
		"name":    pick(firstNames),
		"surname": pick(lastNames),
	}
}

// Post returns a post record with id and title.
func Post() map[string]any {
	return map[string]any{
		"id":    uuid.NewString(),
		"title": pick(titles),
	}
}

// Comment returns a comment record with id, title, body and a 0..10 rate.
func Comment() map[string]any {
	return map[string]any{
		"id":    uuid.NewString(),
		"title": pick(titles),
		"body":  "Lorem ipsum " + uuid.NewString(),
		"rate":  rand.IntN(11),
	}
}

// Role returns a role record with id and name.
func Role() map[string]any {
	return map[string]any{
		"id":   uuid.NewString(),
		"name": pick(roles),
	}
}

// Many returns n records produced by gen as a sequence.
func Many(n int, gen func() map[string]any) []any {
	result := make([]any, n)
	for i := range result {
		result[i] = gen()
	}

	return result
}

// Between returns between lo and hi (inclusive) records produced by gen.
func Between(lo, hi int, gen func() map[string]any) []any {
	return Many(lo+rand.IntN(hi-lo+1), gen)
}

// Records converts a sequence produced by Many back to records.
func Records(items []any) []map[string]any {
	result := make([]map[string]any, len(items))
	for i, item := range items {
		result[i] = item.(map[string]any)
	}

	return result
}
