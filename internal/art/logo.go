package art

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/gnomegl/hourglass/internal/utils"
)

func PrintLogo(w io.Writer) {
	myFigure := figure.NewFigure("hourglass", "small", false)
	fmt.Fprintf(w, "\033[36m%s\033[0m", myFigure.String())
	fmt.Fprintf(w, "              \033[91mv%s by gnomegl\033[0m\n\n", utils.GetVersion())
}
