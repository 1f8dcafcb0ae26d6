// Package token provides the lexical layer of the OpenDDL parser.
//
// The Scanner is consumed one token at a time by the parser in the root
// package; no token stream is materialized. Tokens carry their raw source
// bytes and the 1-based line on which they start, so the parser can report
// errors against source lines without re-scanning.
package token
