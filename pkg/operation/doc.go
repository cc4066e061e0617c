/*
Package operation runs fixes against files on disk.

	+-------------+
	|  Operation  |
	+------+------+
	       |
	+------+------+------+------+
	|      |             |      |
	Load  Transform    Write  Report

Each operation resolves its target (a path or a doublestar glob), reads the
file as UTF-8, applies the fix rules in order, writes the result back and
prints the fix's fixed report. In dry-run mode a colored diff is printed
instead of writing.

🏃 The Runner executes a list of operations either one after the other or
concurrently with an errgroup.
*/
package operation
