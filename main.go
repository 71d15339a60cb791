package main

import "github.com/ytznab/ytznab/cmd"

func main() {
	cmd.Execute()
}
