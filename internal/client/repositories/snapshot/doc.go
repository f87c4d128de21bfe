// Package snapshot keeps a local copy of the subscription list as of the last
// successful fetch, so the CLI can show stale-but-available data at startup
// before the first refresh returns.
//
// The snapshot is only ever written with a list the server returned; it is
// never a place for unconfirmed edits.
package snapshot
