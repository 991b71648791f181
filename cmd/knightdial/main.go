// Command knightdial prints every phone number a chess knight can dial on
// a telephone keypad, for a range of number lengths.
package main

func main() {
	execute()
}
