// File: example_test.go
// Title: Example Tests for SliceX Package Documentation
// Description: Executable examples for de-duplication and sorting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial example implementation
// - 2026-10-16 v0.2.0: Sorting examples

package slicex_test

import (
	"fmt"

	"github.com/msto63/cmdkit/foundation/utils/slicex"
)

func ExampleRemoveDuplicates() {
	fmt.Println(slicex.RemoveDuplicates([]int{3, 1, 3, 2, 1}))
	// Output:
	// [3 1 2]
}

func ExampleAlphabeticalSort() {
	fmt.Println(slicex.AlphabeticalSort([]string{"a1", "A11", "A2", "a22", "a3"}))
	// Output:
	// [a1 A11 A2 a22 a3]
}

func ExampleNaturalSort() {
	fmt.Println(slicex.NaturalSort([]string{"a1", "A11", "A2", "a22", "a3"}))
	// Output:
	// [a1 A2 a3 A11 a22]
}
