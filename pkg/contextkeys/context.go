package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы храним *gorm.DB в context.
// DBMiddleware кладет сюда либо пул соединений, либо тестовую транзакцию.
const DBContextKey = contextKey("db")
