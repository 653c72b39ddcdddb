// Package database provides PostgreSQL connectivity, schema migrations, and
// the repository implementing the credential collaborator.
package database
