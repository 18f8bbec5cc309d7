// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route.
//   - rayid: assigns each request a RayID, stored in the context locals and
//     echoed in the response headers for tracing.
package middleware
