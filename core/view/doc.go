// Package view defines the presentation port driven by the auth
// controller, plus the role-to-label/style policy shared by its
// implementations.
//
// The controller only calls the abstract Binder operations; it never
// references presentation elements by name. NopBinder and LogBinder ship
// for headless embeddings.
package view
