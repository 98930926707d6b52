// This program performs administrative tasks for the mining node.
package main

import "github.com/ardanlabs/powsim/app/tooling/admin/cmd"

func main() {
	cmd.Execute()
}
