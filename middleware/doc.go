// Package middleware provides the client-side route guard: a per-
// navigation check that sends unauthenticated users to the login page
// and keeps non-staff users out of staff-only routes.
package middleware
