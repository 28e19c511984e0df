package main

import "github.com/nguyentantai21042004/vidprompt/internal/cli"

func main() {
	cli.Execute()
}
