// Package client contains client-side building blocks for talking to the
// remote subscription store.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) with the four
//     operations of the subscription resource: List, Create, Update, Delete.
//  2. A concrete REST implementation (see HTTPClient) that issues the calls
//     against a fixed base path, tags each request with an X-Request-ID, and
//     records Prometheus metrics when configured.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     opening an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every failure is a *RequestError whose Kind is one of ErrFetch, ErrCreate,
// ErrUpdate or ErrDelete. Callers match with errors.Is. An unreachable server
// and a non-success status produce the same Kind; StatusCode tells them apart
// for diagnostics only.
//
// Mutating calls never touch any cache. The caller refreshes afterwards.
package client
