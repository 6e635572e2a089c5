package main

import "github.com/stfelty/connect-team-hr-formatter/cmd"

func main() {
	cmd.Execute()
}
