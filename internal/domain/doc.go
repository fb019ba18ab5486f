// Package domain defines core data models, error kinds and interfaces shared
// across the app. It contains plain types (keys, algorithm tags) and
// contracts (interfaces) only.
package domain
