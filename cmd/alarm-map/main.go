package main

import "github.com/oshokin/alarm-map/cmd/alarm-map/cmd"

func main() {
	cmd.Execute()
}
