package main

import "github.com/xrsl/applykit/cmd"

func main() {
	cmd.Execute()
}
