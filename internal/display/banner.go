package display

import (
	"fmt"
	"os"

	"github.com/EldynC/ShadowCrawler/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _               _                ____                    _
/ ___|| |__   __ _  __| | _____      __/ ___|_ __ __ ___      _| | ___ _ __
\___ \| '_ \ / _`+"`"+` |/ _`+"`"+` |/ _ \ \ /\ / / |   | '__/ _`+"`"+` \ \ /\ / / |/ _ \ '__|
 ___) | | | | (_| | (_| | (_) \ V  V /| |___| | | (_| |\ V  V /| |  __/ |
|____/|_| |_|\__,_|\__,_|\___/ \_/\_/  \____|_|  \__,_| \_/\_/ |_|\___|_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
