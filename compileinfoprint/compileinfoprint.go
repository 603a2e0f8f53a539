// compileinfoprint is imported for the side effect of printing the compileinfo
// to os.StdErr before main runs.
package compileinfoprint

import "github.com/carbocation/rindex/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
