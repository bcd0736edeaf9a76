package main

import "nutritrack/cmd/nutritrack"

func main() {
	nutritrack.Execute()
}
