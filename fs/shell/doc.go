// Package shell runs the line protocol on top of a dir.Directory.
//
// Each input line is normalized to uppercase, parsed into a keyword and up
// to two arguments, and dispatched:
//
//	LIST                  list active files
//	CREATE <name> <size>  create a file of size bytes
//	RENAME <old> <new>    rename a file
//	DEL <name>            delete a file
//	PAGE                  allocate a 1000-byte probe block and print its addresses
//	END                   print a farewell and halt
//
// Every reply ends with the "> " prompt except END, after which the shell
// ignores further input.
package shell
