package log

import (
	"fmt"
	"os"

	"git.sr.ht/~mango/egg/source"
)

var CrashOnError = false

// Err prints a diagnostic to the standard error according to format.  It also
// prepends the program name and appends a newline.  This is much like the
// errx(3) function from C unless CrashOnError is false in which case this will
// act like warnx(3).
func Err(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "egg: "+format+"\n", args...)

	if CrashOnError {
		os.Exit(1)
	}
}

// Diag is like Err but also prints the position of loc in the form
// name:line:col.  If loc cannot be resolved the position is left out.
func Diag(files *source.Manager, loc source.Location, format string, args ...any) {
	pos, err := files.Position(loc)
	if err != nil {
		Err(format, args...)
		return
	}
	Err("%s: "+format, append([]any{pos}, args...)...)
}
