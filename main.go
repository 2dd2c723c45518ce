package main

import (
	"github.com/chatstack/dbgrant/lib"
)

func main() {
	// correlates to bin/dbgrant
	lib.GlobalDBGrant = lib.NewDBGrant()
	lib.GlobalDBGrant.ArgParse()
	lib.GlobalDBGrant.Notice("Done")
}
