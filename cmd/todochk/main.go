// todochk prints every TODO comment found under the current directory.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(defaultApp())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "todochk: %v\n", err)
		os.Exit(1)
	}
}
