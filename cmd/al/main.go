package main

import "github.com/KaiK0de/alter-life-rpg/cmd/al/root"

func main() {
	root.Execute()
}
