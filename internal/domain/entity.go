package domain

// UndefinedID marks an entity that has not been persisted yet. Rejected
// transaction snapshots carry it because they never reach the store.
const UndefinedID int64 = -1
