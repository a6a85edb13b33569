// Package notify defines the notification/toast collaborator used by the
// viewer for user-visible messages and the standard notice texts raised by
// the format-fallback loader.
package notify
