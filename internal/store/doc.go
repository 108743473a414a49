// Package store provides persistence for the decoder's dictionary layers.
//
// It contains concrete implementations of the domain storage interfaces:
//   - FileStateStore keeps {userDict, deletedKeys} as one JSON file, written
//     via temp file and rename so a mutation is never half-applied.
//   - A sealed variant of FileStateStore encrypts the same record with a
//     passphrase (scrypt + ChaCha20-Poly1305).
//   - RedisStateStore keeps the two records under two keys, written in a
//     single MULTI/EXEC transaction.
//   - EmbeddedBase and FileBase load the read-only base dictionary.
//
// All state stores are safe for concurrent use via internal locking.
package store
