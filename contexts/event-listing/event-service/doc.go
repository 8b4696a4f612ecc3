// Package eventservice implements the event ranking and voting aggregate
// inside the event-listing context.
//
// The module owns event lifecycle, vote and report mutations with
// counter/row-set consistency, the search/sort read side, ticket price
// bounds, and outbox-backed event production. Business rules live in the
// domain and application layers; infrastructure stays behind ports and
// adapters.
package eventservice
