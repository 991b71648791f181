// Package knightdial enumerates the phone numbers a chess knight can dial
// on a telephone keypad, one digit per knight move.
//
// What is knightdial?
//
//	A small, dependency-light toolkit made of:
//		• keypad/: the 3×4 dial pad, tagged Key/Dead cells, knight adjacency
//		• dialer/: depth-first enumeration of every hop chain of length N
//		• cmd/knightdial: CLI that runs lengths 1..9 and reports counts
//
// Quick ASCII example:
//
//	1 2 3
//	4 5 6      from 1 a knight reaches 6 and 8,
//	7 8 9      so the two-digit numbers are 16 and 18.
//	  0
//
//	go install github.com/katalvlaran/knightdial/cmd/knightdial@latest
package knightdial
