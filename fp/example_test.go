package fp_test

import (
	"fmt"
	"strings"

	"github.com/charmingruby/cons/fp"
)

func ExamplePipe() {
	value := fp.Pipe("go",
		strings.ToUpper,
		func(s string) string { return s + "!" },
	)
	fmt.Println(value)
	// Output:
	// GO!
}
