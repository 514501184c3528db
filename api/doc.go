// Package api provides the HTTP API layer for the feed service.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: request logging, rate limiting, outgoing call logging
//
// # Endpoints
//
//	GET  /feed           one live load of the configured feed
//	GET  /feed/snapshot  last saved snapshot (404 when none)
//	POST /feed/snapshot  load and save a snapshot
//
// Both load failure kinds answer 502 with distinct messages. The OpenAPI
// spec is served at /openapi.json and the Swagger UI at /docs.
//
// # Usage Example
//
//	api, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 5,
//	    RateBurst: 10,
//	})
//	handlers.NewFeedHandler(loader, feedURL, store, logger).RegisterRoutes(api)
//	http.ListenAndServe(":8000", router)
package api
