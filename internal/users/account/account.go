// Copyright (c) 2026 Picstream. All rights reserved.

/*
Package account covers the authenticated user's own profile and follow graph.

The profile endpoint is intentionally storage-free: it answers from the
identity snapshot embedded in the session token, so a profile read reflects
the account as it was at login, not live state. The follow operations are the
write side of the graph the feed assembler consumes.
*/
package account

// # Field Identifiers

const (
	FieldUserID = "id"
)
