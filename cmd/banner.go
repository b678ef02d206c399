package cmd

import (
	"fmt"
	"io"

	"github.com/headerhawk/headerhawk/internal/checker"
)

const asciiBanner = `
|\     /|(  ____ \(  ___  )(  __  \ (  ____ \(  ____ )|\     /|(  ___  )|\     /|| \    /\
| )   ( || (    \/| (   ) || (  \  )| (    \/| (    )|| )   ( || (   ) || )   ( ||  \  / /
| (___) || (__    | (___) || |   ) || (__    | (____)|| (___) || (___) || | _ | ||  (_/ /
|  ___  ||  __)   |  ___  || |   | ||  __)   |     __)|  ___  ||  ___  || |( )| ||   _ (
| (   ) || (      | (   ) || |   ) || (      | (\ (   | (   ) || (   ) || || || ||  ( \ \
| )   ( || (____/\| )   ( || (__/  )| (____/\| ) \ \__| )   ( || )   ( || () () ||  /  \ \
|/     \|(_______/|/     \|(______/ (_______/|/   \__/|/     \||/     \|(_______)|_/    \/`

// printBanner writes the startup banner, the tool identity and the
// exact User-Agent sent with every request.
func printBanner(w io.Writer) {
	fmt.Fprintln(w, colorInfo(asciiBanner))
	fmt.Fprintln(w, colorWarn("Security Header Analysis Tool"))
	fmt.Fprintln(w, colorWarn(fmt.Sprintf("Version: %s", Version)))
	fmt.Fprintln(w, colorWarn(fmt.Sprintf("User-Agent: %s", checker.UserAgent)))
	fmt.Fprintln(w)
}
