package twopointer_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/twopointer"
)

// ExampleFindPairWithSum finds two prices in a sorted list that fill a budget.
func ExampleFindPairWithSum() {
	prices := []int{1, 2, 3, 4, 6}
	i, j, err := twopointer.FindPairWithSum(prices, 6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("indices=(%d,%d) values=(%d,%d)\n", i, j, prices[i], prices[j])
	// Output:
	// indices=(1,3) values=(2,4)
}

// ExampleIsPalindrome ignores punctuation, spaces and case.
func ExampleIsPalindrome() {
	fmt.Println(twopointer.IsPalindrome("A man, a plan, a canal: Panama"))
	fmt.Println(twopointer.IsPalindrome("hello"))
	// Output:
	// true
	// false
}

// ExampleReverse reverses a slice in place.
func ExampleReverse() {
	s := []int{1, 2, 3, 4, 5}
	twopointer.Reverse(s)
	fmt.Println(s)
	// Output:
	// [5 4 3 2 1]
}
