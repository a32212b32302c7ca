package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key the request-scoped *gorm.DB is stored under.
const DBContextKey = contextKey("db")
