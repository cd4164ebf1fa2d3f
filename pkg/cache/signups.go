// Package cache keeps the local record of signups used as a fallback when
// the remote endpoint cannot be reached.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/softblush/signup-landing/pkg/models"
	"github.com/softblush/signup-landing/pkg/store"
)

// DefaultKey is the key the signup list is stored under
const DefaultKey = "softblushSignups"

// AppendResult reports what Append did. Err is a persistence failure the
// caller may log; the signup flow does not depend on it.
type AppendResult struct {
	Appended bool
	Err      error
}

// SignupCache is an ordered, email-unique list of signups in a KV store
type SignupCache struct {
	kv  store.KV
	key string
	mu  sync.Mutex
}

// NewSignupCache creates a cache over kv. An empty key uses DefaultKey.
func NewSignupCache(kv store.KV, key string) *SignupCache {
	if key == "" {
		key = DefaultKey
	}
	return &SignupCache{kv: kv, key: key}
}

// ReadAll returns the stored signups. A missing, unreadable or corrupt
// value reads as an empty list.
func (c *SignupCache) ReadAll(ctx context.Context) []models.Signup {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		log.Printf("Error reading signup cache, treating as empty: %v", err)
		return []models.Signup{}
	}
	if !ok || raw == "" {
		return []models.Signup{}
	}

	var signups []models.Signup
	if err := json.Unmarshal([]byte(raw), &signups); err != nil {
		log.Printf("Error parsing signup cache, treating as empty: %v", err)
		return []models.Signup{}
	}
	if signups == nil {
		signups = []models.Signup{}
	}
	return signups
}

// Contains reports whether a signup with this email is already cached
func (c *SignupCache) Contains(ctx context.Context, email string) bool {
	return containsEmail(c.ReadAll(ctx), email)
}

// Append adds signup unless its email is already cached, then rewrites
// the whole list. Concurrent appends within one process are serialized.
func (c *SignupCache) Append(ctx context.Context, signup models.Signup) AppendResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	signups := c.ReadAll(ctx)
	if containsEmail(signups, signup.Email) {
		return AppendResult{}
	}
	signups = append(signups, signup)

	encoded, err := json.Marshal(signups)
	if err != nil {
		return AppendResult{Err: fmt.Errorf("error encoding signup cache: %w", err)}
	}
	if err := c.kv.Set(ctx, c.key, string(encoded)); err != nil {
		return AppendResult{Err: fmt.Errorf("error persisting signup cache: %w", err)}
	}
	return AppendResult{Appended: true}
}

func containsEmail(signups []models.Signup, email string) bool {
	email = strings.ToLower(email)
	for _, s := range signups {
		if s.Email != "" && strings.ToLower(s.Email) == email {
			return true
		}
	}
	return false
}
