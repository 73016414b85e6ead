// Package ed25519 implements the Ed25519 digital signature scheme
// (RFC 8032, FIPS 186-5) over the twisted Edwards curve edwards25519.
//
// The package exposes three operations — derive a public key from a
// 32-byte seed, sign a message, and verify a signature — each with a
// synchronous and an asynchronous variant (see SignSync/SignAsync,
// VerifySync/VerifyAsync, DeriveKeySync/DeriveKeyAsync), plus the
// underlying Point and Scalar types, and the curve's named parameters
// (FieldPrime, GroupOrder, CurveA, CurveD, GeneratorX, GeneratorY,
// CofactorH), for callers that need to work with the group and field
// directly. Every seed, message, signature, and public-key parameter
// accepts either raw bytes or a hex string (see NormalizeBytes).
//
// Verification can run in two modes, both of which accept iff the
// cofactor-cleared equation [8](R + [k]A - [S]B) = O holds: StrictMode
// requires canonical point encodings and rejects a small-order public
// key, while ZIP215Mode relaxes point-encoding canonicity and does not
// reject small-order keys, matching Zcash's
// ZIP-215 for consensus-critical verifiers that must agree on the
// accept/reject answer for every input regardless of which conforming
// implementation produced it.
//
// Every signing and verification path that needs a hash draws on a
// collaborator installed via SetSyncHash/SetAsyncHash; SignAsync,
// VerifyAsync, and DeriveKeyAsync always work out of the box against
// a default SHA-512-backed async hash, while the Sync variants require
// SetSyncHash to have been called first.
package ed25519
