// Package identity defines the user and role types shared by the auth
// client, controller, view, and notification packages.
//
// The types mirror the backend's wire format:
//
//	{"username": "admin", "display_name": "系統管理員", "role": "admin"}
//
// Role parsing is total: any role value the backend sends that is not
// "admin" is treated as a regular user, so new or misspelled roles never
// crash a renderer.
package identity
