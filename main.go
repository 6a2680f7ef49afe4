package main

import "github.com/Alianno-Tulloch/Personal-Wellness-Tracker/cmd"

func main() {
	cmd.Execute()
}
