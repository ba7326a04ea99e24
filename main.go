package main

import "github.com/cooffer/ZenParticlesBy3D/cmd"

func main() {
	cmd.Execute()
}
