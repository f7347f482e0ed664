package main

import "tweetscope/cmd"

func main() {
	cmd.Execute()
}
