package ed25519

import (
	"crypto/rand"
	"crypto/sha512"
	"sync"
)

// SyncHashFunc computes SHA-512 (or a compatible substitute) over the
// concatenation of its arguments and returns the 64-byte digest
// synchronously.
type SyncHashFunc func(parts ...[]byte) [64]byte

// AsyncHashFunc is the asynchronous counterpart: every sign/verify/
// key-derivation operation has an async variant that always works
// even if no SyncHashFunc has been installed, by running the default
// hash on a goroutine and delivering the result over the returned
// channel. Cancellation is not supported: a caller that abandons the
// channel simply never receives the result, and the goroutine still
// runs to completion.
type AsyncHashFunc func(parts ...[]byte) <-chan [64]byte

// RandFunc supplies cryptographically secure random bytes, used for
// deterministic-seed and ephemeral-randomness callers that want to
// substitute a test or hardware CSPRNG.
type RandFunc func(n int) ([]byte, error)

var (
	collaboratorMu      sync.Mutex
	syncHashFn          SyncHashFunc // nil until installed; no default exists
	asyncHashFn         AsyncHashFunc = defaultAsyncHash
	asyncHashOverridden bool
	randFn              RandFunc = defaultRand
	randOverridden      bool
)

func defaultAsyncHash(parts ...[]byte) <-chan [64]byte {
	out := make(chan [64]byte, 1)
	go func() {
		h := sha512.New()
		for _, p := range parts {
			h.Write(p)
		}
		var sum [64]byte
		copy(sum[:], h.Sum(nil))
		out <- sum
	}()
	return out
}

func defaultRand(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, wrapErr(ConfigMissing, err, "default CSPRNG failed")
	}
	return buf, nil
}

// SetSyncHash installs the synchronous hash collaborator. It is
// write-once-if-empty: the first call wins, and every later call
// returns an error without altering the installed function, so that
// one part of a program cannot silently swap out a hash another part
// is already relying on.
func SetSyncHash(f SyncHashFunc) error {
	collaboratorMu.Lock()
	defer collaboratorMu.Unlock()
	if syncHashFn != nil {
		return newErr(ConfigMissing, "sync hash collaborator is already installed")
	}
	syncHashFn = f
	return nil
}

// SetAsyncHash installs a replacement asynchronous hash collaborator.
// Unlike SetSyncHash there is always a working default, so this slot
// is write-once-if-default: it can be overridden exactly once away
// from defaultAsyncHash.
func SetAsyncHash(f AsyncHashFunc) error {
	collaboratorMu.Lock()
	defer collaboratorMu.Unlock()
	if asyncHashOverridden {
		return newErr(ConfigMissing, "async hash collaborator has already been overridden")
	}
	asyncHashFn = f
	asyncHashOverridden = true
	return nil
}

// SetRand installs a replacement CSPRNG collaborator, write-once away
// from the crypto/rand-backed default, under the same rationale as
// SetAsyncHash.
func SetRand(f RandFunc) error {
	collaboratorMu.Lock()
	defer collaboratorMu.Unlock()
	if randOverridden {
		return newErr(ConfigMissing, "CSPRNG collaborator has already been overridden")
	}
	randFn = f
	randOverridden = true
	return nil
}

func getSyncHash() (SyncHashFunc, error) {
	collaboratorMu.Lock()
	defer collaboratorMu.Unlock()
	if syncHashFn == nil {
		return nil, newErr(ConfigMissing, "no synchronous hash collaborator installed; use the Async variant or call SetSyncHash")
	}
	return syncHashFn, nil
}

func getAsyncHash() AsyncHashFunc {
	collaboratorMu.Lock()
	defer collaboratorMu.Unlock()
	return asyncHashFn
}

func getRand() RandFunc {
	collaboratorMu.Lock()
	defer collaboratorMu.Unlock()
	return randFn
}

// RandomBytes returns n cryptographically secure random bytes from the
// installed CSPRNG collaborator (crypto/rand by default), the exported
// counterpart of getRand for callers that need ephemeral randomness of
// their own without reaching past this package into crypto/rand
// directly.
func RandomBytes(n int) ([]byte, error) {
	return getRand()(n)
}
