package main

import "github.com/ovalle/asistego/cmd"

func main() {
	cmd.Execute()
}
