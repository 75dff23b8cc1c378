// Package api provides the HTTP API layer for the college profile resolver.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// - JSON spec available at /openapi.json
// - Interactive docs UI at /docs
//
// 2. Request Validation
//
// Huma validates request bodies from struct tags:
//
//	type CollegeDetailsRequest struct {
//	    CollegeName string `json:"college_name" minLength:"1"`
//	}
//
// 3. Middleware
//
// - CORS handling
// - Request logging with a request ID that is stored in the context and
//   returned in the X-Request-ID header
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	collegeHandler := handlers.NewCollegeHandler(profileService)
//	collegeHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. A college with no search results maps to
// 404, a blank name to 400, and any upstream failure to 500 with the error
// text in the detail.
package api
