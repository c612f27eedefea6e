package model

import "github.com/google/uuid"

// ToggleMembership flips actor's membership in ids: if actor is present,
// exactly one occurrence is removed; otherwise actor is appended at the
// end. The input slice is not modified. Likes and favorites both use this.
func ToggleMembership(ids JSONBUUIDArray, actor uuid.UUID) JSONBUUIDArray {
	out := make(JSONBUUIDArray, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if !removed && id == actor {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, actor)
	}
	return out
}
