package signature_test

import (
	"testing"

	"github.com/ardanlabs/powsim/foundation/blockchain/signature"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Hash(t *testing.T) {
	const hash = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"

	t.Log("Given the need to hash data.")
	{
		h := signature.Hash("hello world")
		if h != hash {
			t.Logf("\t%s\tgot: %s", failed, h)
			t.Logf("\t%s\texp: %s", failed, hash)
			t.Fatalf("\t%s\tShould get back the right hash.", failed)
		}
		t.Logf("\t%s\tShould get back the right hash.", success)

		h = signature.Hash("hello", " ", "world")
		if h != hash {
			t.Fatalf("\t%s\tShould get the same hash when the data is split into parts: %s", failed, h)
		}
		t.Logf("\t%s\tShould get the same hash when the data is split into parts.", success)

		if len(h) != signature.HashLength {
			t.Fatalf("\t%s\tShould get back %d hex characters: %d", failed, signature.HashLength, len(h))
		}
		t.Logf("\t%s\tShould get back %d hex characters.", success, signature.HashLength)
	}
}

func Test_ZeroHash(t *testing.T) {
	t.Log("Given the need to reference a zero hash.")
	{
		if len(signature.ZeroHash) != 64 {
			t.Fatalf("\t%s\tShould be 64 characters long: %d", failed, len(signature.ZeroHash))
		}
		t.Logf("\t%s\tShould be 64 characters long.", success)

		for _, c := range signature.ZeroHash {
			if c != '0' {
				t.Fatalf("\t%s\tShould only contain zeros: %q", failed, c)
			}
		}
		t.Logf("\t%s\tShould only contain zeros.", success)
	}
}
