// Package engine drives one proof-of-work attempt end to end:
// header and nonce → keys → edge source → lean trimming → cycle search.
//
// The engine owns configuration validation and the memory guard. It never
// retries: configuration and resource errors are returned at once, and an
// attempt without a cycle is an ordinary Result with no Cycles.
package engine
