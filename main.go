package main

import "github.com/Hariraj-0611/Leave-Management/cmd"

func main() {
	cmd.Execute()
}
