package cache

import (
	"encoding/json"
	"strconv"
)

// PromptKey builds the AI-response cache key from a prompt and its context
// tag. The hash is the rolling 32-bit scheme the cache has always used:
// fast, non-cryptographic, collision-tolerant. Two distinct prompts may map
// to one entry; TTL bounds how long a collision can be served.
func PromptKey(prompt, context string) string {
	payload, _ := json.Marshal(struct {
		Prompt  string `json:"prompt"`
		Context string `json:"context,omitempty"`
	}{prompt, context})

	var h int32
	for _, b := range payload {
		h = h*31 + int32(b)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return PrefixAI + strconv.FormatInt(v, 36)
}

// UserKey joins a prefix with a user-scoped identifier.
func UserKey(prefix, userID string) string {
	return prefix + userID
}
