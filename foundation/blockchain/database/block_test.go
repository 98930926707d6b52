package database_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ardanlabs/powsim/foundation/blockchain/database"
	"github.com/ardanlabs/powsim/foundation/blockchain/signature"
)

func newBlock(t *testing.T) database.Block {
	b, err := database.NewBlock(1, []database.Tx{database.NewCoinbaseTx("miner1")}, "prev_hash")
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a block: %v", failed, err)
	}

	return b
}

// =============================================================================

func Test_Genesis(t *testing.T) {
	const hash = "fac9448b05c86b5166a25b7b6d8d4374f19a3e298ce075db709ec730504380dd"

	t.Log("Given the need to anchor a chain with a genesis block.")
	{
		g := database.Genesis()

		if g.Index != 0 || g.Nonce != 0 {
			t.Fatalf("\t%s\tShould have index and nonce of zero: %d %d", failed, g.Index, g.Nonce)
		}
		t.Logf("\t%s\tShould have index and nonce of zero.", success)

		if g.PrevBlockHash != signature.ZeroHash {
			t.Fatalf("\t%s\tShould have the zero hash as parent: %s", failed, g.PrevBlockHash)
		}
		t.Logf("\t%s\tShould have the zero hash as parent.", success)

		if !g.IsValid {
			t.Fatalf("\t%s\tShould be valid without a proof of work.", failed)
		}
		t.Logf("\t%s\tShould be valid without a proof of work.", success)

		if len(g.Trans) != 1 {
			t.Fatalf("\t%s\tShould have exactly one transaction: %d", failed, len(g.Trans))
		}
		t.Logf("\t%s\tShould have exactly one transaction.", success)

		if h := g.Hash(); h != hash {
			t.Logf("\t%s\tgot: %s", failed, h)
			t.Logf("\t%s\texp: %s", failed, hash)
			t.Fatalf("\t%s\tShould get back the right hash.", failed)
		}
		t.Logf("\t%s\tShould get back the right hash.", success)
	}
}

func Test_NewBlock(t *testing.T) {
	t.Log("Given the need to construct blocks for mining.")
	{
		b := newBlock(t)

		if b.Index != 1 || b.Nonce != 0 || b.PrevBlockHash != "prev_hash" || b.IsValid {
			t.Fatalf("\t%s\tShould get an unsolved block: %+v", failed, b)
		}
		t.Logf("\t%s\tShould get an unsolved block.", success)

		_, err := database.NewBlock(1, nil, "prev_hash")
		if !errors.Is(err, database.ErrNoTransactions) {
			t.Fatalf("\t%s\tShould reject a block without transactions: %v", failed, err)
		}
		t.Logf("\t%s\tShould reject a block without transactions.", success)
	}
}

func Test_BlockHash(t *testing.T) {
	t.Log("Given the need to hash blocks.")
	{
		b := newBlock(t)
		b.Nonce = 12345

		h1 := b.Hash()
		h2 := b.Hash()
		if h1 != h2 {
			t.Fatalf("\t%s\tShould get the same hash twice: %s %s", failed, h1, h2)
		}
		t.Logf("\t%s\tShould get the same hash twice.", success)

		if len(h1) != 64 {
			t.Fatalf("\t%s\tShould get back 64 hex characters: %d", failed, len(h1))
		}
		t.Logf("\t%s\tShould get back 64 hex characters.", success)

		b.Nonce = 12346
		if b.Hash() == h1 {
			t.Fatalf("\t%s\tShould get a new hash when the nonce changes.", failed)
		}
		t.Logf("\t%s\tShould get a new hash when the nonce changes.", success)

		b.Nonce = 12345
		b.IsValid = true
		b.Index = 99
		if b.Hash() != h1 {
			t.Fatalf("\t%s\tShould ignore the index and validity when hashing.", failed)
		}
		t.Logf("\t%s\tShould ignore the index and validity when hashing.", success)

		b2 := b
		b2.Trans = []database.Tx{database.NewCoinbaseTx("miner1"), database.NewCoinbaseTx("miner2")}
		b3 := b
		b3.Trans = []database.Tx{database.NewCoinbaseTx("miner2"), database.NewCoinbaseTx("miner1")}
		if b2.Hash() == b3.Hash() {
			t.Fatalf("\t%s\tShould be sensitive to transaction order.", failed)
		}
		t.Logf("\t%s\tShould be sensitive to transaction order.", success)
	}
}

func Test_TryNonce(t *testing.T) {
	t.Log("Given the need to perform proof of work attempts.")
	{
		t.Logf("\tTest 0:\tWhen using the maximum ceiling.")
		{
			b := newBlock(t)

			var solved bool
			for range 100 {
				if b.TryNonce(math.MaxInt32) {
					solved = true
					break
				}
			}

			if !solved || !b.IsValid {
				t.Fatalf("\t%s\tTest 0:\tShould solve the block within 100 attempts.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould solve the block within 100 attempts.", success)

			if database.HashValue(b.Hash()) >= math.MaxInt32 {
				t.Fatalf("\t%s\tTest 0:\tShould leave a nonce that solves the block.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave a nonce that solves the block.", success)
		}

		t.Logf("\tTest 1:\tWhen using a ceiling of zero.")
		{
			b := newBlock(t)

			for range 10_000 {
				if b.TryNonce(0) {
					t.Fatalf("\t%s\tTest 1:\tShould never solve the block: nonce %d", failed, b.Nonce)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould never solve the block.", success)

			if b.IsValid {
				t.Fatalf("\t%s\tTest 1:\tShould leave the block invalid.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the block invalid.", success)
		}
	}
}

func Test_HashValue(t *testing.T) {
	type table struct {
		name  string
		hash  string
		value int32
	}

	tt := []table{
		{name: "zero", hash: "00000000ffff", value: 0},
		{name: "small", hash: "0000ff00", value: 0xff00},
		{name: "largest", hash: "7ffffffe00", value: math.MaxInt32 - 1},
		{name: "sign-bit", hash: "80000000", value: math.MaxInt32},
		{name: "all-ones", hash: "ffffffffab", value: math.MaxInt32},
	}

	t.Log("Given the need to read the proof value of a hash.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling hash %q.", testID, tst.hash)
			{
				f := func(t *testing.T) {
					v := database.HashValue(tst.hash)
					if v != tst.value {
						t.Logf("\t%s\tTest %d:\tgot: %d", failed, testID, v)
						t.Logf("\t%s\tTest %d:\texp: %d", failed, testID, tst.value)
						t.Fatalf("\t%s\tTest %d:\tShould get back the right value.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get back the right value.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}

		t.Logf("\tTest %d:\tWhen handling a malformed hash.", len(tt))
		{
			defer func() {
				if recover() == nil {
					t.Fatalf("\t%s\tShould panic on a hash shorter than the prefix.", failed)
				}
				t.Logf("\t%s\tShould panic on a hash shorter than the prefix.", success)
			}()
			database.HashValue("abc")
		}
	}
}

func Test_BlockData(t *testing.T) {
	t.Log("Given the need to expose a block.")
	{
		b := newBlock(t)
		b.Nonce = 255

		bd := database.NewBlockData(b)
		if bd.Hash != b.Hash() || bd.Index != 1 || uint64(bd.Nonce) != 255 {
			t.Fatalf("\t%s\tShould carry the block fields: %+v", failed, bd)
		}
		t.Logf("\t%s\tShould carry the block fields.", success)

		if bd.Nonce.String() != "0xff" {
			t.Fatalf("\t%s\tShould encode the nonce as hex: %s", failed, bd.Nonce)
		}
		t.Logf("\t%s\tShould encode the nonce as hex.", success)
	}
}
