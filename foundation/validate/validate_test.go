package validate_test

import (
	"testing"

	"github.com/ardanlabs/powsim/foundation/validate"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Check(t *testing.T) {
	type query struct {
		Count   int    `json:"count" validate:"gte=1,lte=1000"`
		MinerID string `json:"miner_id" validate:"omitempty,printascii,max=64"`
	}

	t.Log("Given the need to validate values.")
	{
		if err := validate.Check(query{Count: 3}); err != nil {
			t.Fatalf("\t%s\tShould accept a valid value: %v", failed, err)
		}
		t.Logf("\t%s\tShould accept a valid value.", success)

		err := validate.Check(query{Count: 0})
		if !validate.IsFieldErrors(err) {
			t.Fatalf("\t%s\tShould get back field errors: %v", failed, err)
		}
		t.Logf("\t%s\tShould get back field errors.", success)

		fields := validate.GetFieldErrors(err).Fields()
		if _, exists := fields["count"]; !exists || len(fields) != 1 {
			t.Fatalf("\t%s\tShould name the json field that failed: %v", failed, fields)
		}
		t.Logf("\t%s\tShould name the json field that failed: %s", success, fields["count"])
	}
}
