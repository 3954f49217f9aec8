package main

import "github.com/accelec/accele/cmd/accelec/cmd"

func main() {
	cmd.Execute()
}
