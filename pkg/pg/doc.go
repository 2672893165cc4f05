// Package pg provides PostgreSQL connectivity for the durable store:
// pooled connections with startup retry, a healthcheck closure used as the
// failover probe, goose schema migrations, and helpers for classifying
// common Postgres errors (not found, duplicate key, foreign key violation).
package pg
