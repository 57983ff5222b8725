// Command minifs runs the in-memory flat-file directory shell.
package main

func main() {
	execute()
}
