// Package accountservice owns registration, login, and token verification
// for the identity-access context. Tokens are HS256-signed JWTs whose
// subject is the account id; the event context checks them before accepting
// votes or reports.
package accountservice
