package expansion_test

import (
	"fmt"

	"github.com/testmatrix/testmatrix/expansion"
)

// ExampleBuilder_Expand expands two token cases across a strictness axis into
// four independently named units.
func ExampleBuilder_Expand() {
	impl := func(positional []interface{}, params expansion.Params) error {
		return nil
	}

	b := expansion.NewBuilder(impl)
	b.CaseParams(expansion.Params{"token": "valid"})
	b.CaseParams(expansion.Params{"token": "invalid"})
	if err := b.OptionValues("strict", true, false); err != nil {
		fmt.Println(err)
		return
	}

	batch := b.Expand("login tokens")
	for _, u := range batch.Units() {
		params := u.Params()
		fmt.Printf("%s token=%v strict=%v\n", u.Name(), params["token"], params["strict"])
	}

	// Output:
	// test_login_tokens__case_000 token=valid strict=true
	// test_login_tokens__case_001 token=valid strict=false
	// test_login_tokens__case_002 token=invalid strict=true
	// test_login_tokens__case_003 token=invalid strict=false
}
