package strutil_test

import (
	"fmt"

	strutil "github.com/baditaflorin/go_strutil"
)

func ExampleCamelCase() {
	fmt.Println(strutil.CamelCase("background-color", false))
	fmt.Println(strutil.CamelCase("user_id", true))
	// Output:
	// backgroundColor
	// UserId
}

func ExampleHyphenate() {
	fmt.Println(strutil.Hyphenate("backgroundColor"))
	fmt.Println(strutil.HyphenateWith("UserId", "_"))
	// Output:
	// background-color
	// user_id
}

func ExampleQuote() {
	quoted := strutil.Quote(`say "hi"`)
	fmt.Println(quoted)
	fmt.Println(strutil.Unquote(`"plain"`))
	// Output:
	// "say \"hi\""
	// plain
}

func ExampleFormat() {
	fmt.Println(strutil.Format("{0} has {1} items, {2}", "cart", 3))
	// Output: cart has 3 items, {2}
}

func ExamplePadLeft() {
	id, _ := strutil.PadLeft(42, 6, "0")
	fmt.Println(id)
	right, _ := strutil.PadRight("ab", 5, "xy")
	fmt.Println(right)
	// Output:
	// 000042
	// abxyx
}

func ExampleHash() {
	fmt.Println(strutil.Hash("hello"))
	// Output: 99162322
}

func ExampleSimilarity() {
	fmt.Printf("%.2f\n", strutil.Similarity("listen", "silent"))
	fmt.Printf("%.2f\n", strutil.Similarity("ab", "ac"))
	// Output:
	// 1.00
	// 0.50
}
