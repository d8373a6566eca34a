package main

import (
	"errors"
	"fmt"
	"os"

	"phoneprice/form"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var verrs form.ValidationErrors
		if errors.As(err, &verrs) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
