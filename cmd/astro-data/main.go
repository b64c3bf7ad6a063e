package main

// Bundle the timezone database so timezone validation works even on
// hosts without a system zoneinfo directory.
import _ "time/tzdata"

func main() {
	Execute()
}
