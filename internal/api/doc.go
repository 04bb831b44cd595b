// Package api contains the HTTP handlers, request/response models, and
// middleware for the service. Handlers stay thin: they decode and validate
// requests, delegate to stores and services, and map domain errors onto
// HTTP status codes. Everything behind the auth middleware reads the
// authenticated user from the request context.
package api
