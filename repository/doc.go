// Package repository provides a generic repository abstraction built on Bun
// for CRUD operations, querying, pagination, and transactions, with
// optimistic-concurrency checks and soft-delete support layered on top.
package repository
