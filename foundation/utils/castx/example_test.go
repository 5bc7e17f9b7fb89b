package castx_test

import (
	"fmt"

	"github.com/msto63/cmdkit/foundation/utils/castx"
)

func ExampleCast() {
	fmt.Println(castx.Cast(true, "0"))
	fmt.Println(castx.Cast(true, "on"))
	fmt.Println(castx.Cast(5, "abc"))
	// Output:
	// false
	// true
	// Problem setting parameter (now 5) to abc; incorrect type?
	// 5
}
