package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

// Check and Assert are the two fatal guards planecolor's loaders and
// the easy-segment peeler panic through: a malformed instance/solution
// file or a broken internal invariant has no recovery path worth
// coding, so both print in red and crash rather than propagate an
// error the caller has no sane way to handle.

func Check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panicln(err)
	}
}

func Assert(ok bool, msg string) {
	if !ok {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panic()
	}
}
