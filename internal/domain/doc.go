// Package domain holds the core types and service interfaces shared across
// the application. It has no dependencies on transport or storage packages.
package domain
