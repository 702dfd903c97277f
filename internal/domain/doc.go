// Package domain defines core data models shared across the app.
// It contains plain value types (dice, validation errors) only.
package domain
