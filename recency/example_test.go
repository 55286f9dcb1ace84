package recency_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/recency"
)

// ExampleTracker tracks the three most recently opened files.
func ExampleTracker() {
	tr, err := recency.New[string, struct{}](3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, f := range []string{"file1", "file2", "file1", "file3", "file2", "file4"} {
		if ev, ok := tr.Touch(f, struct{}{}); ok {
			fmt.Println("evicted", ev)
		}
	}
	for f := range tr.Recent() {
		fmt.Println(f)
	}
	// Output:
	// evicted file1
	// file4
	// file2
	// file3
}
