package interfaces

// Logger is the structured logging contract used by the core and the API.
//
//	logger.Debug("Feed fetched", map[string]interface{}{
//		"url":    "https://example.com/feed",
//		"status": 200,
//	})
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
