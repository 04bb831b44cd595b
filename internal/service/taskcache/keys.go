package taskcache

import "github.com/google/uuid"

// Key scheme: one key class per task snapshot, one per owner listing.
// The two classes share the keyspace with any other application data in
// the backing store, so both carry distinguishing prefixes.
const (
	taskKeyPrefix      = "task:"
	userTasksKeyPrefix = "user_tasks:"

	// taskKeyPattern matches every single-task entry across all owners.
	taskKeyPattern = taskKeyPrefix + "*"
)

// taskKey returns the cache key for a single task snapshot.
func taskKey(taskID uuid.UUID) string {
	return taskKeyPrefix + taskID.String()
}

// userTasksKey returns the cache key for a user's full task listing.
func userTasksKey(ownerID uuid.UUID) string {
	return userTasksKeyPrefix + ownerID.String()
}
