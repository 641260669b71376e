// Package database provides connection management, configuration loading,
// migrations, data seeding, SQL error classification, logging, and health
// checks built on top of Bun.
package database
