// quickid CLI - short quasi-unique ID generator and server
package main

import "github.com/weiawesome/wes-io-live/quickid/internal/cli"

func main() {
	cli.Execute()
}
