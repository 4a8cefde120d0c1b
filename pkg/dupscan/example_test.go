package dupscan_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/pagesanity/pfnscan/pkg/dupscan"
)

// Example scans a pagemap dump for physical frames mapped more than once.
func Example() {
	dump := `0x7f0000000000: pfn 3b4bf1 soft-dirty 1 file/shared 0
0x7f0000001000: pfn 3dd31e soft-dirty 1 file/shared 0
0x7f0000002000: pfn 0 soft-dirty 0 file/shared 0
0x7f0000003000: pfn 3b4bf1 soft-dirty 1 file/shared 0
`
	if _, err := dupscan.Run(strings.NewReader(dump), os.Stdout, dupscan.DefaultOptions()); err != nil {
		fmt.Println("scan failed:", err)
	}
	// Output:
	// 3b4bf1
	// 3dd31e
	// 3b4bf1 match!
	// 1 matches
}

// ExampleScanner_Observe feeds lines one at a time with custom markers.
func ExampleScanner_Observe() {
	sc, err := dupscan.New(dupscan.Options{Start: "id=", End: ";"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, line := range []string{"id=a;", "id=b;", "id=a;"} {
		if ev, ok, _ := sc.Observe(line); ok {
			fmt.Println(ev.Key, ev.Repeat)
		}
	}
	fmt.Println(sc.Result().Count())
	// Output:
	// a false
	// b false
	// a true
	// 1
}
