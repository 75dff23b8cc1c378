// Package core contains the business logic for the college profile resolver.
// It does not depend on any web framework and can be used from the HTTP
// server and the command line client alike.
//
// The core package is organized into several sub-packages:
//
// - domain: CollegeProfile and the lookup result types
// - profile: the resolver pipeline and its text helpers
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (search, geocoding, video, logging)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "college-profile-api/core/interfaces"
//	    "college-profile-api/core/profile"
//	)
//
//	deps := interfaces.Dependencies{
//	    Search:   searcher,
//	    Geocoder: geocoder,
//	    Videos:   videos,
//	    Pages:    describer,
//	    Logger:   logger,
//	}
//
//	service := profile.NewProfileService(deps, nil)
//	college, err := service.Resolve(ctx, "Example College")
//
// # Error Handling
//
// A college with no search results yields errors.NotFoundError. Failures of
// the search and video lookups are returned wrapped; description and
// geocoding failures are logged and the pipeline falls back.
package core
